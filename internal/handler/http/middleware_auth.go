// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/utils"
)

// auth is the mandatory authentication middleware.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via the auth service, and, on success, stores the
// verified [models.Identity] in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// Rejections follow the error taxonomy of the API:
//   - HTTP 401 Unauthorized when the header is absent entirely: the caller
//     never presented a credential.
//   - HTTP 403 Forbidden when a credential is present but unusable: a
//     malformed header, a tampered signature, or an expired token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, err.Error(), http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("rejected invalid or expired token")
			utils.WriteJSONError(w, "token is expired or invalid", http.StatusForbidden)
			return
		}

		// Store the verified identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth is the preview-mode authentication middleware.
//
// It attaches the verified identity to the context when a valid bearer
// token is present and silently proceeds unauthenticated in every other
// case: no header, malformed header, invalid or expired token. A stale
// token in the client therefore degrades a listing to the public view
// instead of producing an error.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring unusable authorization header on preview-mode route")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring invalid token on preview-mode route")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
