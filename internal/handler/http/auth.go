package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/service"
	"github.com/MKhiriev/recipe-manager/internal/store"
	"github.com/MKhiriev/recipe-manager/internal/utils"
	"github.com/MKhiriev/recipe-manager/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			utils.WriteJSONError(w, "name, email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("password too short")
			utils.WriteJSONError(w, service.ErrPasswordTooShort.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteJSONError(w, store.ErrEmailAlreadyExists.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: registeredUser, Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid login data provided")
			utils.WriteJSONError(w, "email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// unknown email and wrong password deliberately share one message
			log.Err(err).Msg("invalid credentials")
			utils.WriteJSONError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", foundUser.ID.String()).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}

// logout exists for API symmetry with the client session controller. Bearer
// tokens are not tracked server-side, so there is no state to invalidate:
// the client discards its copy and the token simply ages out.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

// me returns the account of the verified caller. Mounted behind the
// mandatory auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on authenticated route")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, identity.UserID.String())
	if err != nil {
		log.Err(err).Str("id", identity.UserID.String()).Msg("error loading current user")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}
