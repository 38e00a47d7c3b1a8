package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holocron/internal/models/db_models"
	"holocron/internal/repositories"
	"holocron/pkg/utils"
)

func newFavoriteService(db *gorm.DB) FavoriteServiceInterface {
	return NewFavoriteService(
		repositories.NewFavoriteRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewCharacterRepository(db),
		repositories.NewPlanetRepository(db),
		zap.NewNop(),
	)
}

func seedFavoriteFixtures(t *testing.T, db *gorm.DB) (db_models.User, db_models.Character, db_models.Planet) {
	user := db_models.User{Email: "a@b.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	gender := "male"
	character := db_models.Character{Name: "Luke", Gender: &gender}
	require.NoError(t, db.Create(&character).Error)

	planet := db_models.Planet{Name: "Tatooine"}
	require.NoError(t, db.Create(&planet).Error)

	return user, character, planet
}

func TestAddFavorite_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	user, character, _ := seedFavoriteFixtures(t, db)
	favoriteService := newFavoriteService(db)
	characterService := NewCharacterService(repositories.NewCharacterRepository(db), zap.NewNop())
	ctx := context.Background()

	favorite, err := favoriteService.AddFavorite(ctx, user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)

	assert.Equal(t, user.ID, favorite.UserID)
	assert.Equal(t, "character", favorite.Type)
	assert.Nil(t, favorite.Planet)
	require.NotNil(t, favorite.Character)

	direct, err := characterService.GetCharacterByID(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, direct, favorite.Character)
}

func TestAddFavorite_MissingUserOrTarget(t *testing.T) {
	db := setupTestDB(t)
	user, character, planet := seedFavoriteFixtures(t, db)
	service := newFavoriteService(db)
	ctx := context.Background()

	_, err := service.AddFavorite(ctx, user.ID+99, db_models.CharacterTarget(character.ID))
	assert.ErrorIs(t, err, utils.ErrUserNotFound)

	_, err = service.AddFavorite(ctx, user.ID, db_models.CharacterTarget(character.ID+99))
	assert.ErrorIs(t, err, utils.ErrCharacterNotFound)

	_, err = service.AddFavorite(ctx, user.ID, db_models.PlanetTarget(planet.ID+99))
	assert.ErrorIs(t, err, utils.ErrPlanetNotFound)

	favorites, err := service.ListUserFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestDeleteFavorite_ByID(t *testing.T) {
	db := setupTestDB(t)
	user, character, _ := seedFavoriteFixtures(t, db)
	service := newFavoriteService(db)
	ctx := context.Background()

	favorite, err := service.AddFavorite(ctx, user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)

	require.NoError(t, service.DeleteFavorite(ctx, favorite.ID))
	assert.ErrorIs(t, service.DeleteFavorite(ctx, favorite.ID), utils.ErrFavoriteNotFound)

	favorites, err := service.ListUserFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestDeleteFavorite_ByTarget(t *testing.T) {
	db := setupTestDB(t)
	user, character, planet := seedFavoriteFixtures(t, db)
	service := newFavoriteService(db)
	ctx := context.Background()

	_, err := service.AddFavorite(ctx, user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)
	_, err = service.AddFavorite(ctx, user.ID, db_models.PlanetTarget(planet.ID))
	require.NoError(t, err)

	require.NoError(t, service.DeleteFavoriteByTarget(ctx, user.ID, db_models.CharacterTarget(character.ID)))

	err = service.DeleteFavoriteByTarget(ctx, user.ID, db_models.CharacterTarget(character.ID))
	assert.ErrorIs(t, err, utils.ErrFavoriteNotFound)

	favorites, err := service.ListUserFavorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "planet", favorites[0].Type)
	require.NotNil(t, favorites[0].Planet)
	assert.Equal(t, planet.ID, favorites[0].Planet.ID)
}

func TestListUserFavorites_InsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	user, character, planet := seedFavoriteFixtures(t, db)
	service := newFavoriteService(db)
	ctx := context.Background()

	first, err := service.AddFavorite(ctx, user.ID, db_models.PlanetTarget(planet.ID))
	require.NoError(t, err)
	second, err := service.AddFavorite(ctx, user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)

	favorites, err := service.ListUserFavorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, first.ID, favorites[0].ID)
	assert.Equal(t, second.ID, favorites[1].ID)
}

func TestListUserFavorites_CorruptDetailSurfacesError(t *testing.T) {
	db := setupTestDB(t)
	user, character, _ := seedFavoriteFixtures(t, db)
	service := newFavoriteService(db)
	ctx := context.Background()

	favorite, err := service.AddFavorite(ctx, user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)

	// Rip out the detail row behind the service's back.
	require.NoError(t, db.Where("favorite_id = ?", favorite.ID).Delete(&db_models.FavoriteCharacter{}).Error)

	_, err = service.ListUserFavorites(ctx, user.ID)
	assert.ErrorIs(t, err, utils.ErrFavoriteDetailMissing)
}
