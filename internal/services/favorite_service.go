package services

import (
	"context"

	"go.uber.org/zap"

	"holocron/internal/models/db_models"
	"holocron/internal/models/response_models"
	"holocron/internal/repositories"
	"holocron/pkg/utils"
)

// FavoriteServiceInterface is the single lifecycle contract behind every
// favorite endpoint. All entry points, generic or per-target, funnel into the
// same operations.
type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, userID uint, target db_models.FavoriteTarget) (*response_models.FavoriteResponse, error)
	DeleteFavorite(ctx context.Context, favoriteID uint) error
	DeleteFavoriteByTarget(ctx context.Context, userID uint, target db_models.FavoriteTarget) error
	ListUserFavorites(ctx context.Context, userID uint) ([]response_models.FavoriteResponse, error)
}

type FavoriteService struct {
	favoriteRepo  repositories.FavoriteRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	characterRepo repositories.CharacterRepositoryInterface
	planetRepo    repositories.PlanetRepositoryInterface
	logger        *zap.Logger
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	characterRepo repositories.CharacterRepositoryInterface,
	planetRepo repositories.PlanetRepositoryInterface,
	logger *zap.Logger,
) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo:  favoriteRepo,
		userRepo:      userRepo,
		characterRepo: characterRepo,
		planetRepo:    planetRepo,
		logger:        logger,
	}
}

func (s *FavoriteService) AddFavorite(ctx context.Context, userID uint, target db_models.FavoriteTarget) (*response_models.FavoriteResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to look up user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if err := s.checkTargetExists(ctx, target); err != nil {
		return nil, err
	}

	favorite, err := s.favoriteRepo.CreateWithDetail(ctx, userID, target)
	if err != nil {
		s.logger.Error("failed to create favorite", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.serializeFavorite(favorite)
}

func (s *FavoriteService) DeleteFavorite(ctx context.Context, favoriteID uint) error {
	favorite, err := s.favoriteRepo.FindByID(ctx, favoriteID)
	if err != nil {
		s.logger.Error("failed to look up favorite", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if favorite == nil {
		return utils.ErrFavoriteNotFound
	}

	if err := s.favoriteRepo.DeleteWithDetail(ctx, favorite.ID); err != nil {
		s.logger.Error("failed to delete favorite", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) DeleteFavoriteByTarget(ctx context.Context, userID uint, target db_models.FavoriteTarget) error {
	favorite, err := s.favoriteRepo.FindByUserAndTarget(ctx, userID, target)
	if err != nil {
		s.logger.Error("failed to look up favorite by target", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if favorite == nil {
		return utils.ErrFavoriteNotFound
	}

	if err := s.favoriteRepo.DeleteWithDetail(ctx, favorite.ID); err != nil {
		s.logger.Error("failed to delete favorite", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) ListUserFavorites(ctx context.Context, userID uint) ([]response_models.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list favorites", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		response, err := s.serializeFavorite(&favorites[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (s *FavoriteService) checkTargetExists(ctx context.Context, target db_models.FavoriteTarget) error {
	switch target.Kind() {
	case db_models.FavoriteTypeCharacter:
		character, err := s.characterRepo.FindByID(ctx, target.EntityID())
		if err != nil {
			s.logger.Error("failed to look up character", zap.Error(err))
			return utils.ErrDatabaseError
		}
		if character == nil {
			return utils.ErrCharacterNotFound
		}
	case db_models.FavoriteTypePlanet:
		planet, err := s.planetRepo.FindByID(ctx, target.EntityID())
		if err != nil {
			s.logger.Error("failed to look up planet", zap.Error(err))
			return utils.ErrDatabaseError
		}
		if planet == nil {
			return utils.ErrPlanetNotFound
		}
	default:
		return utils.ErrInvalidFavoriteType
	}
	return nil
}

// serializeFavorite resolves the nested view the discriminant selects. A
// header whose matching detail row is gone is reported as corruption, not
// silently returned without the nested object.
func (s *FavoriteService) serializeFavorite(favorite *db_models.Favorite) (*response_models.FavoriteResponse, error) {
	response := &response_models.FavoriteResponse{
		ID:     favorite.ID,
		UserID: favorite.UserID,
		Type:   string(favorite.Type),
	}

	switch favorite.Type {
	case db_models.FavoriteTypeCharacter:
		if favorite.CharacterDetail == nil {
			s.logger.Error("favorite header without character detail",
				zap.Uint("favorite_id", favorite.ID))
			return nil, utils.ErrFavoriteDetailMissing
		}
		response.Character = characterToResponse(&favorite.CharacterDetail.Character)
	case db_models.FavoriteTypePlanet:
		if favorite.PlanetDetail == nil {
			s.logger.Error("favorite header without planet detail",
				zap.Uint("favorite_id", favorite.ID))
			return nil, utils.ErrFavoriteDetailMissing
		}
		response.Planet = planetToResponse(&favorite.PlanetDetail.Planet)
	default:
		return nil, utils.ErrInvalidFavoriteType
	}

	return response, nil
}
