package store

import (
	"github.com/MKhiriev/recipe-manager/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	RecipeRepository RecipeRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		RecipeRepository: NewRecipeRepository(db, logger),
	}
}
