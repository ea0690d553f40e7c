package dataset_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"thaigeo/cmd/fx/db_fx"
	"thaigeo/cmd/fx/memcache_fx"
	"thaigeo/internal/config"
	"thaigeo/internal/dataset"
	"thaigeo/internal/loaders"
	"thaigeo/internal/repositories"
	mem "thaigeo/pkg/memcache"
)

// Module wires the RecordLoader named by cfg.Source and the Dataset over it.
// The postgres source brings db_fx with it; the others bring memcache_fx.
func Module(cfg *config.Config) fx.Option {
	var source fx.Option
	switch cfg.Source {
	case config.SourcePostgres:
		source = fx.Options(db_fx.Module, fx.Provide(provideRepositoryLoader))
	case config.SourceHTTP:
		source = fx.Options(memcache_fx.Module, fx.Provide(provideHTTPLoader))
	default:
		source = fx.Provide(provideDirLoader)
	}
	return fx.Options(source, fx.Provide(provideDataset))
}

// FileModule is Module restricted to the dir and http sources, for commands
// that read the published files and write PostgreSQL themselves.
func FileModule(cfg *config.Config) fx.Option {
	if cfg.Source == config.SourceHTTP {
		return fx.Options(memcache_fx.Module, fx.Provide(provideHTTPLoader), fx.Provide(provideDataset))
	}
	return fx.Options(fx.Provide(provideDirLoader), fx.Provide(provideDataset))
}

func provideDirLoader(cfg *config.Config, logger *zap.Logger) (dataset.RecordLoader, error) {
	format, err := loaders.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return loaders.NewSourceLoader(loaders.NewDirSource(cfg.DataDir), format, logger), nil
}

func provideHTTPLoader(cfg *config.Config, store mem.BlobStore, logger *zap.Logger) (dataset.RecordLoader, error) {
	format, err := loaders.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	var source loaders.Source = loaders.NewHTTPSource(cfg.BaseURL, cfg.HTTPTimeout)
	if cfg.CacheTTL > 0 {
		source = loaders.NewCachedSource(source, store, cfg.CacheTTL, logger)
	}
	return loaders.NewSourceLoader(source, format, logger), nil
}

func provideRepositoryLoader(
	provinceRepo repositories.ProvinceRepository,
	districtRepo repositories.DistrictRepository,
	subDistrictRepo repositories.SubDistrictRepository,
) dataset.RecordLoader {
	return loaders.NewRepositoryLoader(provinceRepo, districtRepo, subDistrictRepo)
}

func provideDataset(lc fx.Lifecycle, cfg *config.Config, loader dataset.RecordLoader, logger *zap.Logger) *dataset.Dataset {
	ds := dataset.New(loader, dataset.WithLogger(logger))
	if cfg.Preload {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return ds.Preload(ctx)
			},
		})
	}
	return ds
}
