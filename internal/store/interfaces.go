package store

import (
	"context"

	"github.com/MKhiriev/recipe-manager/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// RecipeRepository is the data-access surface for recipes. ListRecipes takes
// an optional owner identity: nil means preview mode (no ownership scoping).
type RecipeRepository interface {
	ListRecipes(ctx context.Context, filter models.RecipeFilter, owner *models.Identity) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	FindRecipeByID(ctx context.Context, id uuid.UUID) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, update models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
}
