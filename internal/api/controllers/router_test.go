package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holocron/internal/models/db_models"
	"holocron/internal/repositories"
	"holocron/internal/services"
	"holocron/pkg/middleware"
)

// setupRouter wires the full stack over an in-memory database, mirroring the
// route table in cmd/app.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

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

	logger := zap.NewNop()
	userRepo := repositories.NewUserRepository(db)
	characterRepo := repositories.NewCharacterRepository(db)
	planetRepo := repositories.NewPlanetRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	usersController := NewUsersController(services.NewUserService(userRepo, logger))
	charactersController := NewCharactersController(services.NewCharacterService(characterRepo, logger))
	planetsController := NewPlanetsController(services.NewPlanetService(planetRepo, logger))
	favoritesController := NewFavoritesController(
		services.NewFavoriteService(favoriteRepo, userRepo, characterRepo, planetRepo, logger))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	users := r.Group("/users")
	users.GET("", usersController.GetUsers)
	users.POST("", usersController.CreateUser)
	users.POST("/login", usersController.Login)

	myFavorites := users.Group("/favorites", middleware.JWTAuthMiddleware())
	myFavorites.GET("", favoritesController.GetMyFavorites)
	myFavorites.POST("/characters/:id", favoritesController.AddFavoriteCharacter)
	myFavorites.POST("/planets/:id", favoritesController.AddFavoritePlanet)
	myFavorites.DELETE("/characters/:id", favoritesController.DeleteFavoriteCharacter)
	myFavorites.DELETE("/planets/:id", favoritesController.DeleteFavoritePlanet)

	characters := r.Group("/characters")
	characters.GET("", charactersController.GetCharacters)
	characters.GET("/:id", charactersController.GetCharacterByID)
	characters.POST("", charactersController.CreateCharacter)

	planets := r.Group("/planets")
	planets.GET("", planetsController.GetPlanets)
	planets.GET("/:id", planetsController.GetPlanetByID)
	planets.POST("", planetsController.CreatePlanet)

	favorites := r.Group("/favorites")
	favorites.POST("", favoritesController.AddFavorite)
	favorites.DELETE("/:id", favoritesController.DeleteFavorite)

	return r, db
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	require.NoError(t, json.Unmarshal(env.Data, out))
}
