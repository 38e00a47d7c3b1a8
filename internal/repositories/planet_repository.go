package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"holocron/internal/models/db_models"
)

type PlanetRepositoryInterface interface {
	Insert(ctx context.Context, planet *db_models.Planet) error
	FindByID(ctx context.Context, id uint) (*db_models.Planet, error)
	GetAllPlanets(ctx context.Context) ([]db_models.Planet, error)
}

type planetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) PlanetRepositoryInterface {
	return &planetRepository{db: db}
}

func (r *planetRepository) Insert(ctx context.Context, planet *db_models.Planet) error {
	return r.db.WithContext(ctx).Create(planet).Error
}

func (r *planetRepository) FindByID(ctx context.Context, id uint) (*db_models.Planet, error) {
	var planet db_models.Planet
	err := r.db.WithContext(ctx).First(&planet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &planet, nil
}

func (r *planetRepository) GetAllPlanets(ctx context.Context) ([]db_models.Planet, error) {
	var planets []db_models.Planet
	err := r.db.WithContext(ctx).Order("id ASC").Find(&planets).Error
	if err != nil {
		return nil, err
	}
	return planets, nil
}
