// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// listRecipes returns recipes visible to the caller. Behind optionalAuth:
// an anonymous request gets the unscoped listing, an authenticated one gets
// only recipes it owns. Query params `search` and `category` narrow the set.
func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.RecipeFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	var caller *models.Identity
	if identity, ok := utils.GetIdentityFromContext(ctx); ok {
		caller = &identity
	}

	recipes, err := h.services.RecipeService.ListRecipes(ctx, filter, caller)
	if err != nil {
		log.Err(err).Msg("error listing recipes")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.RecipeListResponse{Recipes: recipes}, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on authenticated route")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RecipeService.CreateRecipe(ctx, recipe, identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNameRequired):
			log.Err(err).Msg("recipe name missing")
			utils.WriteJSONError(w, service.ErrRecipeNameRequired.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during recipe creation")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getRecipe fetches one recipe by id. A malformed identifier is reported the
// same way as an unknown one: from the client's point of view both mean
// "no such recipe".
func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipeID := chi.URLParam(r, "id")

	recipe, err := h.services.RecipeService.GetRecipe(ctx, recipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipeID), errors.Is(err, store.ErrRecipeNotFound):
			log.Err(err).Str("id", recipeID).Msg("recipe not found")
			utils.WriteJSONError(w, store.ErrRecipeNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", recipeID).Msg("error finding recipe")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipeID := chi.URLParam(r, "id")

	var patch models.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.RecipeService.UpdateRecipe(ctx, recipeID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipeID):
			log.Err(err).Str("id", recipeID).Msg("invalid recipe id")
			utils.WriteJSONError(w, service.ErrInvalidRecipeID.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRecipeNotFound):
			log.Err(err).Str("id", recipeID).Msg("recipe not found")
			utils.WriteJSONError(w, store.ErrRecipeNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", recipeID).Msg("unexpected error occurred during recipe update")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipeID := chi.URLParam(r, "id")

	if err := h.services.RecipeService.DeleteRecipe(ctx, recipeID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipeID):
			log.Err(err).Str("id", recipeID).Msg("invalid recipe id")
			utils.WriteJSONError(w, service.ErrInvalidRecipeID.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRecipeNotFound):
			log.Err(err).Str("id", recipeID).Msg("recipe not found")
			utils.WriteJSONError(w, store.ErrRecipeNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", recipeID).Msg("unexpected error occurred during recipe deletion")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
