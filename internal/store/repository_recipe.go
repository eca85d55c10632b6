// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/models"
	"github.com/google/uuid"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository] over the "recipes" table.
//
// Listing applies ownership scoping when a caller identity is supplied;
// all other operations are id-addressed and unscoped (recipe mutations carry
// no per-operation ownership check; see the package documentation of
// internal/service for the rationale).
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

// ListRecipes returns recipes matching the filter.
//
// With owner == nil the listing is unscoped (preview mode). With an owner
// present, only recipes attributed to that identity are returned, matched
// on owner_id OR the legacy owner_email column. See [buildListQuery].
func (r *recipeRepository) ListRecipes(ctx context.Context, filter models.RecipeFilter, owner *models.Identity) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(filter, owner)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

// CreateRecipe persists a new recipe and returns the canonical database
// representation with server-assigned fields (ID, CreatedAt, LastModified).
// Defaults for optional fields are applied at the service layer before the
// record reaches this method.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRecipe,
		recipe.Name, recipe.Description, recipe.Category, recipe.Temperature,
		recipe.PrepTime, recipe.CookTime, recipe.Image, recipe.Link,
		recipe.OwnerID, recipe.OwnerEmail,
	)

	created, err := scanRecipe(row)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error: scanning error")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindRecipeByID retrieves a single recipe.
// Returns [ErrRecipeNotFound] for an empty result set.
func (r *recipeRepository) FindRecipeByID(ctx context.Context, id uuid.UUID) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findRecipeByID, id)

	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).Str("func", "*recipeRepository.FindRecipeByID").Str("id", id.String()).Msg("error: scanning error")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return recipe, nil
}

// UpdateRecipe applies a partial patch to the recipe with the given id and
// returns the updated row. last_modified is refreshed unconditionally;
// identity columns cannot be expressed by the patch type and are never
// modified. See [buildUpdateQuery].
//
// Returns [ErrRecipeNotFound] when the id matches no row.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id uuid.UUID, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Msg("error building update query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Str("id", id.String()).Msg("error: scanning error")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteRecipe removes the recipe with the given identifier.
// Returns [ErrRecipeNotFound] when no row was affected, so callers can
// distinguish "deleted" from "was never there".
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRecipe, id)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Str("id", id.String()).Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	err := row.Scan(
		&recipe.ID, &recipe.Name, &recipe.Description, &recipe.Category, &recipe.Temperature,
		&recipe.PrepTime, &recipe.CookTime, &recipe.Image, &recipe.Link,
		&recipe.OwnerID, &recipe.OwnerEmail, &recipe.CreatedAt, &recipe.LastModified,
	)
	return recipe, err
}
