package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/recipe-manager/internal/service"
	"github.com/MKhiriev/recipe-manager/internal/store"
)

// errorStatusMap is the shared fallback mapping from domain sentinel errors
// to HTTP status codes. Handlers special-case where the same sentinel needs
// a route-specific status (e.g. a malformed recipe id is 404-equivalent on
// reads but 400 on deletes).
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordTooShort:        http.StatusBadRequest,
	service.ErrRecipeNameRequired:      http.StatusBadRequest,
	service.ErrCurrentPasswordRequired: http.StatusBadRequest,
	service.ErrInvalidRecipeID:         http.StatusBadRequest,
	service.ErrInvalidUserID:           http.StatusBadRequest,

	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrCurrentPasswordIncorrect: http.StatusUnauthorized,

	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrNotAccountOwner:         http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrRecipeNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err: the sentinel's
// own text when one matches, a generic message otherwise. Unexpected errors
// never leak their internals to the client.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
