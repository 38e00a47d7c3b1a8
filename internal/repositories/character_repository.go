package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"holocron/internal/models/db_models"
)

type CharacterRepositoryInterface interface {
	Insert(ctx context.Context, character *db_models.Character) error
	FindByID(ctx context.Context, id uint) (*db_models.Character, error)
	GetAllCharacters(ctx context.Context) ([]db_models.Character, error)
}

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) CharacterRepositoryInterface {
	return &characterRepository{db: db}
}

func (r *characterRepository) Insert(ctx context.Context, character *db_models.Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

func (r *characterRepository) FindByID(ctx context.Context, id uint) (*db_models.Character, error) {
	var character db_models.Character
	err := r.db.WithContext(ctx).First(&character, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) GetAllCharacters(ctx context.Context) ([]db_models.Character, error) {
	var characters []db_models.Character
	err := r.db.WithContext(ctx).Order("id ASC").Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}
