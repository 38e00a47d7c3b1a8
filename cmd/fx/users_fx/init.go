package users_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holocron/internal/repositories"
	"holocron/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideUserService)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, logger)
}
