package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"thaigeo/internal/config"
	"thaigeo/internal/infra"
	"thaigeo/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideProvinceRepo, provideDistrictRepo, provideSubDistrictRepo)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}

func provideProvinceRepo(db *gorm.DB) repositories.ProvinceRepository {
	return repositories.NewProvinceRepository(db)
}

func provideDistrictRepo(db *gorm.DB) repositories.DistrictRepository {
	return repositories.NewDistrictRepository(db)
}

func provideSubDistrictRepo(db *gorm.DB) repositories.SubDistrictRepository {
	return repositories.NewSubDistrictRepository(db)
}
