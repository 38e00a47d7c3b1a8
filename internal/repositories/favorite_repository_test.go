package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"holocron/internal/models/db_models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&db_models.User{},
		&db_models.Character{},
		&db_models.Planet{},
		&db_models.Favorite{},
		&db_models.FavoriteCharacter{},
		&db_models.FavoritePlanet{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func seedEntities(t *testing.T, db *gorm.DB) (db_models.User, db_models.Character, db_models.Planet) {
	user := db_models.User{Email: "a@b.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	character := db_models.Character{Name: "Luke"}
	require.NoError(t, db.Create(&character).Error)

	planet := db_models.Planet{Name: "Tatooine"}
	require.NoError(t, db.Create(&planet).Error)

	return user, character, planet
}

func TestCreateWithDetail_SharedIdentity(t *testing.T) {
	db := setupTestDB(t)
	user, character, _ := seedEntities(t, db)
	repo := NewFavoriteRepository(db)

	favorite, err := repo.CreateWithDetail(context.Background(), user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)
	require.NotNil(t, favorite)

	assert.Equal(t, db_models.FavoriteTypeCharacter, favorite.Type)
	require.NotNil(t, favorite.CharacterDetail)
	assert.Equal(t, favorite.ID, favorite.CharacterDetail.FavoriteID)
	assert.Equal(t, character.ID, favorite.CharacterDetail.CharacterID)
	assert.Nil(t, favorite.PlanetDetail)

	var detailCount int64
	require.NoError(t, db.Model(&db_models.FavoriteCharacter{}).Count(&detailCount).Error)
	assert.Equal(t, int64(1), detailCount)
}

func TestCreateWithDetail_PlanetVariant(t *testing.T) {
	db := setupTestDB(t)
	user, _, planet := seedEntities(t, db)
	repo := NewFavoriteRepository(db)

	favorite, err := repo.CreateWithDetail(context.Background(), user.ID, db_models.PlanetTarget(planet.ID))
	require.NoError(t, err)

	assert.Equal(t, db_models.FavoriteTypePlanet, favorite.Type)
	require.NotNil(t, favorite.PlanetDetail)
	assert.Equal(t, favorite.ID, favorite.PlanetDetail.FavoriteID)
	assert.Nil(t, favorite.CharacterDetail)

	var characterDetails int64
	require.NoError(t, db.Model(&db_models.FavoriteCharacter{}).Count(&characterDetails).Error)
	assert.Equal(t, int64(0), characterDetails)
}

func TestDeleteWithDetail_RemovesBothRows(t *testing.T) {
	db := setupTestDB(t)
	user, character, _ := seedEntities(t, db)
	repo := NewFavoriteRepository(db)

	favorite, err := repo.CreateWithDetail(context.Background(), user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteWithDetail(context.Background(), favorite.ID))

	found, err := repo.FindByID(context.Background(), favorite.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var detailCount int64
	require.NoError(t, db.Model(&db_models.FavoriteCharacter{}).Count(&detailCount).Error)
	assert.Equal(t, int64(0), detailCount)
}

func TestDeleteWithDetail_MissingHeader(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)

	err := repo.DeleteWithDetail(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByUserAndTarget(t *testing.T) {
	db := setupTestDB(t)
	user, character, planet := seedEntities(t, db)
	repo := NewFavoriteRepository(db)

	created, err := repo.CreateWithDetail(context.Background(), user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)

	found, err := repo.FindByUserAndTarget(context.Background(), user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := repo.FindByUserAndTarget(context.Background(), user.ID, db_models.PlanetTarget(planet.ID))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListByUser_InsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	user, character, planet := seedEntities(t, db)
	repo := NewFavoriteRepository(db)

	first, err := repo.CreateWithDetail(context.Background(), user.ID, db_models.CharacterTarget(character.ID))
	require.NoError(t, err)
	second, err := repo.CreateWithDetail(context.Background(), user.ID, db_models.PlanetTarget(planet.ID))
	require.NoError(t, err)

	favorites, err := repo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, first.ID, favorites[0].ID)
	assert.Equal(t, second.ID, favorites[1].ID)

	other, err := repo.ListByUser(context.Background(), user.ID+1)
	require.NoError(t, err)
	assert.Empty(t, other)
}
