package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"thaigeo/cmd/fx/dataset_fx"
	"thaigeo/cmd/fx/geo_fx"
	"thaigeo/internal/services"
)

const startTimeout = time.Minute

// baseOptions supplies config and logger to the graph.
func (c *cli) baseOptions() fx.Option {
	return fx.Options(
		fx.Supply(c.cfg, c.logger),
		fx.StartTimeout(startTimeout),
		fx.WithLogger(func() fxevent.Logger {
			if !c.verbose {
				return fxevent.NopLogger
			}
			return &fxevent.ZapLogger{Logger: c.logger.Named("fx")}
		}),
	)
}

// runOnce starts a short lived graph, runs fn and stops the graph again.
func (c *cli) runOnce(ctx context.Context, extra fx.Option, fn func(context.Context) error) error {
	app := fx.New(c.baseOptions(), extra)
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	runErr := fn(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		c.logger.Warn("shutdown", zap.Error(err))
	}
	return runErr
}

func (c *cli) withGeoService(cmd *cobra.Command, fn func(context.Context, services.GeoServiceInterface) error) error {
	var svc services.GeoServiceInterface
	opts := fx.Options(dataset_fx.Module(c.cfg), geo_fx.Module, fx.Populate(&svc))
	return c.runOnce(cmd.Context(), opts, func(ctx context.Context) error {
		return fn(ctx, svc)
	})
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
