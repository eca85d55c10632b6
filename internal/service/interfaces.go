package service

import (
	"context"

	"github.com/MKhiriev/recipe-manager/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes account CRUD with self-or-nothing authorization:
// mutations succeed only when the acting identity matches the target id.
type UserService interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, actor models.Identity, targetID string, patch models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, actor models.Identity, targetID string) error
}

// RecipeService exposes recipe CRUD. Identifier parameters are the external
// string form; the service validates the format before any query, so a
// malformed id is a normal negative outcome ([ErrInvalidRecipeID]), never a
// driver error.
type RecipeService interface {
	ListRecipes(ctx context.Context, filter models.RecipeFilter, caller *models.Identity) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe, owner models.Identity) (models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, patch models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

type AppInfoService interface {
	Version(ctx context.Context) string
}
