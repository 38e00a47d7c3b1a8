package favorites_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holocron/internal/repositories"
	"holocron/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFavoriteService)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepositoryInterface {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	characterRepo repositories.CharacterRepositoryInterface,
	planetRepo repositories.PlanetRepositoryInterface,
	logger *zap.Logger,
) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, userRepo, characterRepo, planetRepo, logger)
}
