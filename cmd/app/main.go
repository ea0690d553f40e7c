package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"thaigeo/internal/config"
	"thaigeo/internal/logger"
)

// cli carries what the persistent pre-run builds for every subcommand.
type cli struct {
	envFile string
	verbose bool

	source  string
	format  string
	dataDir string
	baseURL string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "thaigeo",
		Short: "Thailand provinces, districts and sub-districts",
		Long: `thaigeo serves and queries the Thailand administrative geodata set.

Records are read once from a directory, an HTTP mirror or PostgreSQL and
shared by every lookup afterwards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&c.source, "source", "", "record source: dir, http or postgres (overrides GEO_SOURCE)")
	flags.StringVar(&c.format, "format", "", "file format: json or csv (overrides GEO_FORMAT)")
	flags.StringVar(&c.dataDir, "data-dir", "", "dataset root for the dir source (overrides GEO_DATA_DIR)")
	flags.StringVar(&c.baseURL, "base-url", "", "dataset root for the http source (overrides GEO_BASE_URL)")

	root.AddCommand(
		newServeCmd(c),
		newStatsCmd(c),
		newProvinceCmd(c),
		newSearchCmd(c),
		newDistrictsCmd(c),
		newHierarchyCmd(c),
		newImportCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = c.source
	}
	if flags.Changed("format") {
		cfg.Format = c.format
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = c.dataDir
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = c.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, c.verbose)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = log
	return nil
}
