package planets_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holocron/internal/repositories"
	"holocron/internal/services"
)

var Module = fx.Provide(
	providePlanetRepo, providePlanetService)

func providePlanetRepo(db *gorm.DB) repositories.PlanetRepositoryInterface {
	return repositories.NewPlanetRepository(db)
}

func providePlanetService(planetRepo repositories.PlanetRepositoryInterface, logger *zap.Logger) services.PlanetServiceInterface {
	return services.NewPlanetService(planetRepo, logger)
}
