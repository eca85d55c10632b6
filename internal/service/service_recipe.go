// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/store"
	"github.com/MKhiriev/recipe-manager/models"
	"github.com/google/uuid"
)

// recipeService implements RecipeService.
//
// Reads are ownership-scoped through the optional caller identity passed to
// ListRecipes. Mutations (update, delete) deliberately carry NO ownership
// check: any authenticated caller may modify any recipe. Note the asymmetry
// with the user service, where mutations are self-or-nothing. Tightening
// recipe mutations the same way is a product decision that has not been
// taken; see DESIGN.md.
type recipeService struct {
	recipeRepository store.RecipeRepository

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

// ListRecipes returns recipes matching the filter, scoped to the caller when
// an identity is present and unscoped (preview mode) when it is nil.
func (s *recipeService) ListRecipes(ctx context.Context, filter models.RecipeFilter, caller *models.Identity) ([]models.Recipe, error) {
	return s.recipeRepository.ListRecipes(ctx, filter, caller)
}

// CreateRecipe validates and persists a new recipe on behalf of owner.
//
// Name is the only mandatory field (ErrRecipeNameRequired otherwise).
// Missing optional fields receive their documented defaults: the placeholder
// image URL, empty description/temperature/link, and null durations. The
// owner id and legacy owner email are stamped from the authenticated caller;
// whatever attribution the request body carried is discarded.
func (s *recipeService) CreateRecipe(ctx context.Context, recipe models.Recipe, owner models.Identity) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if recipe.Name == "" {
		log.Error().Msg("recipe creation rejected: missing name")
		return models.Recipe{}, ErrRecipeNameRequired
	}

	if recipe.Image == "" {
		recipe.Image = models.PlaceholderImageURL
	}

	recipe.ID = uuid.Nil
	recipe.OwnerID = &owner.UserID
	recipe.OwnerEmail = &owner.Email

	created, err := s.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Str("name", recipe.Name).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return created, nil
}

// GetRecipe returns the recipe with the given external id.
// A malformed id is a normal negative outcome (ErrInvalidRecipeID), which
// read paths surface the same way as a missing record.
func (s *recipeService) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return models.Recipe{}, ErrInvalidRecipeID
	}

	return s.recipeRepository.FindRecipeByID(ctx, recipeID)
}

// UpdateRecipe applies a partial patch to an existing recipe.
//
// The patch type cannot express identity fields, so the recipe id and owner
// attribution are immutable through this path. lastModified is refreshed on
// every call, including an effectively empty patch.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, patch models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipeID, err := uuid.Parse(id)
	if err != nil {
		return models.Recipe{}, ErrInvalidRecipeID
	}

	updated, err := s.recipeRepository.UpdateRecipe(ctx, recipeID, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("recipe update ended with error")
		return models.Recipe{}, fmt.Errorf("recipe update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteRecipe removes the recipe with the given external id.
//
// The outcome is three-way and the branches stay distinguishable for the
// transport layer: ErrInvalidRecipeID (malformed id), store.ErrRecipeNotFound
// (no such record), or nil (deleted).
func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	recipeID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidRecipeID
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		log.Err(err).Str("id", id).Msg("recipe deletion ended with error")
		return fmt.Errorf("recipe deletion ended with error: %w", err)
	}

	return nil
}
