package controllers_fx

import (
	"go.uber.org/fx"

	"holocron/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewCharactersController),
	fx.Provide(controllers.NewPlanetsController),
	fx.Provide(controllers.NewFavoritesController))
