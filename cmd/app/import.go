package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"thaigeo/cmd/fx/dataset_fx"
	"thaigeo/cmd/fx/db_fx"
	"thaigeo/cmd/fx/geo_fx"
	"thaigeo/internal/config"
	"thaigeo/internal/infra"
	"thaigeo/internal/services"
)

func newImportCmd(c *cli) *cobra.Command {
	var replace bool
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the dir or http dataset into PostgreSQL",
		Long: `import reads the three collections from --source (dir or http) and
writes them to POSTGRES_URL in a single transaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Source == config.SourcePostgres {
				return errors.New("import needs a dir or http source")
			}
			if c.cfg.PostgresURL == "" {
				return infra.ErrPostgresNotConfigured
			}

			var svc services.ImportServiceInterface
			opts := fx.Options(dataset_fx.FileModule(c.cfg), db_fx.Module, geo_fx.ImportModule, fx.Populate(&svc))
			return c.runOnce(cmd.Context(), opts, func(ctx context.Context) error {
				report, err := svc.Import(ctx, replace)
				if err != nil {
					return err
				}
				return writeJSON(cmd, report)
			})
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "truncate the tables before writing")
	return cmd
}
