package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"holocron/internal/models/db_models"
)

type FavoriteRepositoryInterface interface {
	CreateWithDetail(ctx context.Context, userID uint, target db_models.FavoriteTarget) (*db_models.Favorite, error)
	FindByID(ctx context.Context, id uint) (*db_models.Favorite, error)
	FindByUserAndTarget(ctx context.Context, userID uint, target db_models.FavoriteTarget) (*db_models.Favorite, error)
	ListByUser(ctx context.Context, userID uint) ([]db_models.Favorite, error)
	DeleteWithDetail(ctx context.Context, favoriteID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepositoryInterface {
	return &favoriteRepository{db: db}
}

// CreateWithDetail writes the header and its detail row as one transaction.
// The header insert is the flush point that yields the shared identity for
// the detail's primary key.
func (r *favoriteRepository) CreateWithDetail(ctx context.Context, userID uint, target db_models.FavoriteTarget) (*db_models.Favorite, error) {
	favorite := &db_models.Favorite{
		UserID: userID,
		Type:   target.Kind(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(favorite).Error; err != nil {
			return err
		}

		switch target.Kind() {
		case db_models.FavoriteTypeCharacter:
			detail := db_models.FavoriteCharacter{FavoriteID: favorite.ID, CharacterID: target.EntityID()}
			return tx.Create(&detail).Error
		case db_models.FavoriteTypePlanet:
			detail := db_models.FavoritePlanet{FavoriteID: favorite.ID, PlanetID: target.EntityID()}
			return tx.Create(&detail).Error
		}
		return fmt.Errorf("unknown favorite type %q", target.Kind())
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, favorite.ID)
}

func (r *favoriteRepository) FindByID(ctx context.Context, id uint) (*db_models.Favorite, error) {
	var favorite db_models.Favorite
	err := r.db.WithContext(ctx).
		Preload("CharacterDetail.Character").
		Preload("PlanetDetail.Planet").
		First(&favorite, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindByUserAndTarget(ctx context.Context, userID uint, target db_models.FavoriteTarget) (*db_models.Favorite, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Favorite{})

	switch target.Kind() {
	case db_models.FavoriteTypeCharacter:
		query = query.
			Joins("JOIN favorite_characters ON favorite_characters.favorite_id = favorites.id").
			Where("favorites.user_id = ? AND favorite_characters.character_id = ?", userID, target.EntityID())
	case db_models.FavoriteTypePlanet:
		query = query.
			Joins("JOIN favorite_planets ON favorite_planets.favorite_id = favorites.id").
			Where("favorites.user_id = ? AND favorite_planets.planet_id = ?", userID, target.EntityID())
	default:
		return nil, fmt.Errorf("unknown favorite type %q", target.Kind())
	}

	var favorite db_models.Favorite
	err := query.First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := r.db.WithContext(ctx).
		Preload("CharacterDetail.Character").
		Preload("PlanetDetail.Planet").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteWithDetail removes the header and whichever detail row exists in one
// transaction. Returns gorm.ErrRecordNotFound when the header is absent.
func (r *favoriteRepository) DeleteWithDetail(ctx context.Context, favoriteID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("favorite_id = ?", favoriteID).Delete(&db_models.FavoriteCharacter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("favorite_id = ?", favoriteID).Delete(&db_models.FavoritePlanet{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&db_models.Favorite{}, "id = ?", favoriteID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
