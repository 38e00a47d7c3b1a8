package characters_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holocron/internal/repositories"
	"holocron/internal/services"
)

var Module = fx.Provide(
	provideCharacterRepo, provideCharacterService)

func provideCharacterRepo(db *gorm.DB) repositories.CharacterRepositoryInterface {
	return repositories.NewCharacterRepository(db)
}

func provideCharacterService(characterRepo repositories.CharacterRepositoryInterface, logger *zap.Logger) services.CharacterServiceInterface {
	return services.NewCharacterService(characterRepo, logger)
}
