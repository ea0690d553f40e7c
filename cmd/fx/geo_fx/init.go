package geo_fx

import (
	"go.uber.org/fx"
	"thaigeo/internal/services"
)

var Module = fx.Provide(services.NewGeoService)

var ImportModule = fx.Provide(services.NewImportService)
