// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a session-aware HTTP client for the recipe
// manager server.
//
// The primary abstraction is [ServerAdapter]: it handles serialisation,
// bearer-token management, and mapping of HTTP status codes to the sentinel
// errors in errors.go so that callers can use [errors.Is] for
// transport-agnostic error handling.
//
// The session rule is strict: any 401 or 403 response clears the stored
// token and user before the error is returned, so a client never keeps
// presenting credentials the server has rejected.
package adapter

import (
	"context"

	"github.com/MKhiriev/recipe-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the recipe
// manager server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent authenticated
	// requests. Called automatically after a successful Register or Login.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when logged out.
	Token() string

	// CurrentUser returns the account captured by the last successful
	// Register or Login, or nil when logged out.
	CurrentUser() *models.User

	// Register creates an account and starts a session from the returned
	// token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and starts a session from the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout notifies the server and unconditionally clears local session
	// state, even if the request fails.
	Logout(ctx context.Context) error

	// Me fetches the account of the current session.
	Me(ctx context.Context) (models.User, error)

	// ListRecipes fetches recipes, narrowed by the filter's search term and
	// category when set.
	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)

	// GetRecipe fetches a single recipe by id.
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)

	// CreateRecipe stores a new recipe owned by the current session's user.
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// UpdateRecipe applies a partial update to the recipe with the given id.
	UpdateRecipe(ctx context.Context, id string, patch models.RecipeUpdate) (models.Recipe, error)

	// DeleteRecipe removes the recipe with the given id.
	DeleteRecipe(ctx context.Context, id string) error
}
