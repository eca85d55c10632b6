package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-manager/models"
)

// newTestServerAdapter spins up a stub API and an adapter pointed at it.
func newTestServerAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLogin_StartsSession(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "john@example.com"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "john@example.com", req.Email)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: user, Token: "issued-token"})
	})

	a := newTestServerAdapter(t, mux)

	got, err := a.Login(context.Background(), models.LoginRequest{Email: "john@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "issued-token", a.Token())
	require.NotNil(t, a.CurrentUser())
	assert.Equal(t, user.Email, a.CurrentUser().Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
	})

	a := newTestServerAdapter(t, mux)

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "nope"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestRegister_Conflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
	})

	a := newTestServerAdapter(t, mux)

	_, err := a.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "taken@y.z", Password: "hunter22"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token(), "no session starts on a failed registration")
}

func TestAuthedRequest_AttachesBearer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: models.User{ID: uuid.New()}, Token: "issued-token"})
	})
	mux.HandleFunc("GET /api/recipes/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
		assert.Equal(t, "rib", r.URL.Query().Get("search"))
		writeJSON(t, w, http.StatusOK, models.RecipeListResponse{Recipes: []models.Recipe{{Name: "Ribs"}}})
	})

	a := newTestServerAdapter(t, mux)

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "hunter22"})
	require.NoError(t, err)

	recipes, err := a.ListRecipes(context.Background(), models.RecipeFilter{Search: "rib"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
}

// Any 401 or 403 on an authenticated call wipes the stored session: the
// adapter never keeps presenting credentials the server has rejected.
func TestSessionClearedOnRejection(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, models.AuthResponse{User: models.User{ID: uuid.New()}, Token: "issued-token"})
		})
		mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, status, models.ErrorResponse{Error: http.StatusText(status)})
		})

		a := newTestServerAdapter(t, mux)

		_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "hunter22"})
		require.NoError(t, err)
		require.NotEmpty(t, a.Token())

		_, err = a.Me(context.Background())
		require.Error(t, err)
		wantSentinel := ErrUnauthorized
		if status == http.StatusForbidden {
			wantSentinel = ErrForbidden
		}
		require.ErrorIs(t, err, wantSentinel)
		assert.Empty(t, a.Token(), "token must be dropped after %d", status)
		assert.Nil(t, a.CurrentUser())
	}
}

// Other error statuses leave the session intact.
func TestSessionSurvivesNonAuthErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: models.User{ID: uuid.New()}, Token: "issued-token"})
	})
	mux.HandleFunc("GET /api/recipes/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "boom"})
	})

	a := newTestServerAdapter(t, mux)

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "hunter22"})
	require.NoError(t, err)

	_, err = a.ListRecipes(context.Background(), models.RecipeFilter{})
	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "issued-token", a.Token(), "a 500 must not end the session")
}

func TestLogout_AlwaysClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: models.User{ID: uuid.New()}, Token: "issued-token"})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "boom"})
	})

	a := newTestServerAdapter(t, mux)

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "hunter22"})
	require.NoError(t, err)

	err = a.Logout(context.Background())
	require.Error(t, err)
	assert.Empty(t, a.Token(), "local session ends even when the server call fails")
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "recipe not found"})
	})

	a := newTestServerAdapter(t, mux)

	err := a.DeleteRecipe(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMapHTTPError_NonJSONBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plain text failure", http.StatusBadRequest)
	})

	a := newTestServerAdapter(t, mux)

	_, err := a.GetRecipe(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "plain text failure")
}
