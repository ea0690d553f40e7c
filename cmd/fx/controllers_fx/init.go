package controllers_fx

import (
	"go.uber.org/fx"
	"thaigeo/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewProvincesController),
	fx.Provide(controllers.NewDistrictsController),
	fx.Provide(controllers.NewStatisticsController))
