package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-manager/internal/service"
	"github.com/MKhiriev/recipe-manager/internal/utils"
	"github.com/MKhiriev/recipe-manager/models"
)

// identityEcho is a terminal handler that records whether an identity was
// attached to the request context.
type identityEcho struct {
	called   bool
	identity models.Identity
	ok       bool
}

func (e *identityEcho) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.called = true
	e.identity, e.ok = utils.GetIdentityFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func runAuthMiddleware(t *testing.T, middleware func(http.Handler) http.Handler, authHeader string) (*httptest.ResponseRecorder, *identityEcho) {
	t.Helper()

	echo := &identityEcho{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	middleware(echo).ServeHTTP(rec, req)
	return rec, echo
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec, echo := runAuthMiddleware(t, h.auth, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, echo.called, "handler must not run without a credential")
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeError(t, rec))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec, echo := runAuthMiddleware(t, h.auth, "garbage-without-scheme")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, echo.called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec, echo := runAuthMiddleware(t, h.auth, "Bearer expired-or-forged")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, echo.called)
	assert.Equal(t, "token is expired or invalid", decodeError(t, rec))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec, echo := runAuthMiddleware(t, h.auth, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, echo.called)
	require.True(t, echo.ok, "identity must be attached to the context")
	assert.Equal(t, testIdentity, echo.identity)
}

// Preview mode: the optional middleware never blocks, whatever the header
// looks like. A valid token attaches the identity; anything else is ignored.
func TestOptionalAuthMiddleware(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	tests := []struct {
		name         string
		header       string
		wantIdentity bool
	}{
		{"no header", "", false},
		{"malformed header", "garbage", false},
		{"invalid token", "Bearer stale-token", false},
		{"valid token", "Bearer good-token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, echo := runAuthMiddleware(t, h.optionalAuth, tt.header)

			require.Equal(t, http.StatusOK, rec.Code)
			require.True(t, echo.called, "preview-mode route must always reach the handler")
			assert.Equal(t, tt.wantIdentity, echo.ok)
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid", "Bearer abc", "abc", nil},
		{"no token part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Sanity check that the middleware also composes correctly inside the full
// router: a protected route without a token answers 401 with a JSON body.
func TestProtectedRouteThroughRouter(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		UserService: &mockUserService{
			listUsersFn: func(ctx context.Context) ([]models.User, error) {
				return []models.User{}, nil
			},
		},
	})

	rec := doRequest(t, h, http.MethodGet, "/api/users/", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/users/", "good-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
