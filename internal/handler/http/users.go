package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/service"
	"github.com/MKhiriev/recipe-manager/internal/store"
	"github.com/MKhiriev/recipe-manager/internal/utils"
	"github.com/MKhiriev/recipe-manager/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error listing users")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserID), errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("id", userID).Msg("user not found")
			utils.WriteJSONError(w, store.ErrUserNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", userID).Msg("error finding user")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on authenticated route")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	userID := chi.URLParam(r, "id")

	var patch models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateUser(ctx, identity, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAccountOwner):
			log.Err(err).Str("id", userID).Msg("attempt to update another user's account")
			utils.WriteJSONError(w, service.ErrNotAccountOwner.Error(), http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidUserID), errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("id", userID).Msg("user not found")
			utils.WriteJSONError(w, store.ErrUserNotFound.Error(), http.StatusNotFound)
			return
		case errors.Is(err, service.ErrCurrentPasswordRequired):
			log.Err(err).Msg("current password missing on password change")
			utils.WriteJSONError(w, service.ErrCurrentPasswordRequired.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrCurrentPasswordIncorrect):
			log.Err(err).Msg("current password incorrect on password change")
			utils.WriteJSONError(w, service.ErrCurrentPasswordIncorrect.Error(), http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("new password too short")
			utils.WriteJSONError(w, service.ErrPasswordTooShort.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already taken")
			utils.WriteJSONError(w, store.ErrEmailAlreadyExists.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Str("id", userID).Msg("unexpected error occurred during user update")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.UserResponse{User: updated}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on authenticated route")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	userID := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteUser(ctx, identity, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAccountOwner):
			log.Err(err).Str("id", userID).Msg("attempt to delete another user's account")
			utils.WriteJSONError(w, service.ErrNotAccountOwner.Error(), http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidUserID), errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("id", userID).Msg("user not found")
			utils.WriteJSONError(w, store.ErrUserNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", userID).Msg("unexpected error occurred during user deletion")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
