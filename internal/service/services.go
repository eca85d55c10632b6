package service

import (
	"github.com/MKhiriev/recipe-manager/internal/config"
	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	RecipeService  RecipeService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		RecipeService:  NewRecipeService(storages.RecipeRepository, logger),
		AppInfoService: NewAppInfoService(cfg.App),
	}
}
