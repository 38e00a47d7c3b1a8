package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"holocron/cmd/fx/characters_fx"
	"holocron/cmd/fx/controllers_fx"
	"holocron/cmd/fx/db_fx"
	"holocron/cmd/fx/favorites_fx"
	"holocron/cmd/fx/planets_fx"
	"holocron/cmd/fx/users_fx"
	"holocron/internal/api/controllers"
	"holocron/internal/infra"
	"holocron/pkg/middleware"
	"holocron/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(ProvideLogger),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		db_fx.Module,
		users_fx.Module,
		characters_fx.Module,
		planets_fx.Module,
		favorites_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := infra.AutoMigrate(db); err != nil {
		logger.Error("migration failed", zap.Error(err))
		return err
	}
	return nil
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}

func ProvideRouter(
	usersController *controllers.UsersController,
	charactersController *controllers.CharactersController,
	planetsController *controllers.PlanetsController,
	favoritesController *controllers.FavoritesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, usersController, charactersController, planetsController, favoritesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	usersController *controllers.UsersController,
	charactersController *controllers.CharactersController,
	planetsController *controllers.PlanetsController,
	favoritesController *controllers.FavoritesController) {

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

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
}
