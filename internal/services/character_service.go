package services

import (
	"context"

	"go.uber.org/zap"

	"holocron/internal/models/db_models"
	"holocron/internal/models/request_models"
	"holocron/internal/models/response_models"
	"holocron/internal/repositories"
	"holocron/pkg/utils"
)

type CharacterServiceInterface interface {
	CreateCharacter(ctx context.Context, request request_models.CreateCharacterRequest) (*response_models.CharacterResponse, error)
	GetCharacterByID(ctx context.Context, id uint) (*response_models.CharacterResponse, error)
	GetAllCharacters(ctx context.Context) ([]response_models.CharacterResponse, error)
}

type CharacterService struct {
	characterRepo repositories.CharacterRepositoryInterface
	logger        *zap.Logger
}

func NewCharacterService(characterRepo repositories.CharacterRepositoryInterface, logger *zap.Logger) CharacterServiceInterface {
	return &CharacterService{
		characterRepo: characterRepo,
		logger:        logger,
	}
}

func (s *CharacterService) CreateCharacter(ctx context.Context, request request_models.CreateCharacterRequest) (*response_models.CharacterResponse, error) {
	character := &db_models.Character{
		Name:     request.Name,
		Gender:   request.Gender,
		EyeColor: request.EyeColor,
		Height:   request.Height,
	}
	if err := s.characterRepo.Insert(ctx, character); err != nil {
		s.logger.Error("failed to insert character", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return characterToResponse(character), nil
}

func (s *CharacterService) GetCharacterByID(ctx context.Context, id uint) (*response_models.CharacterResponse, error) {
	character, err := s.characterRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to look up character", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if character == nil {
		return nil, utils.ErrCharacterNotFound
	}
	return characterToResponse(character), nil
}

func (s *CharacterService) GetAllCharacters(ctx context.Context) ([]response_models.CharacterResponse, error) {
	characters, err := s.characterRepo.GetAllCharacters(ctx)
	if err != nil {
		s.logger.Error("failed to list characters", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CharacterResponse, 0, len(characters))
	for i := range characters {
		responses = append(responses, *characterToResponse(&characters[i]))
	}
	return responses, nil
}

func characterToResponse(character *db_models.Character) *response_models.CharacterResponse {
	return &response_models.CharacterResponse{
		ID:       character.ID,
		Name:     character.Name,
		Gender:   character.Gender,
		EyeColor: character.EyeColor,
		Height:   character.Height,
	}
}
