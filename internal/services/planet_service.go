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

type PlanetServiceInterface interface {
	CreatePlanet(ctx context.Context, request request_models.CreatePlanetRequest) (*response_models.PlanetResponse, error)
	GetPlanetByID(ctx context.Context, id uint) (*response_models.PlanetResponse, error)
	GetAllPlanets(ctx context.Context) ([]response_models.PlanetResponse, error)
}

type PlanetService struct {
	planetRepo repositories.PlanetRepositoryInterface
	logger     *zap.Logger
}

func NewPlanetService(planetRepo repositories.PlanetRepositoryInterface, logger *zap.Logger) PlanetServiceInterface {
	return &PlanetService{
		planetRepo: planetRepo,
		logger:     logger,
	}
}

func (s *PlanetService) CreatePlanet(ctx context.Context, request request_models.CreatePlanetRequest) (*response_models.PlanetResponse, error) {
	planet := &db_models.Planet{
		Name:       request.Name,
		Climate:    request.Climate,
		Terrain:    request.Terrain,
		Population: request.Population,
	}
	if err := s.planetRepo.Insert(ctx, planet); err != nil {
		s.logger.Error("failed to insert planet", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return planetToResponse(planet), nil
}

func (s *PlanetService) GetPlanetByID(ctx context.Context, id uint) (*response_models.PlanetResponse, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to look up planet", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if planet == nil {
		return nil, utils.ErrPlanetNotFound
	}
	return planetToResponse(planet), nil
}

func (s *PlanetService) GetAllPlanets(ctx context.Context) ([]response_models.PlanetResponse, error) {
	planets, err := s.planetRepo.GetAllPlanets(ctx)
	if err != nil {
		s.logger.Error("failed to list planets", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PlanetResponse, 0, len(planets))
	for i := range planets {
		responses = append(responses, *planetToResponse(&planets[i]))
	}
	return responses, nil
}

func planetToResponse(planet *db_models.Planet) *response_models.PlanetResponse {
	return &response_models.PlanetResponse{
		ID:         planet.ID,
		Name:       planet.Name,
		Climate:    planet.Climate,
		Terrain:    planet.Terrain,
		Population: planet.Population,
	}
}
