package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"thaigeo/internal/services"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print record counts for the three collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withGeoService(cmd, func(ctx context.Context, svc services.GeoServiceInterface) error {
				stats, err := svc.GetStatistics(ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd, stats)
			})
		},
	}
}

func newProvinceCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "province <code>",
		Short: "Look up a province by its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withGeoService(cmd, func(ctx context.Context, svc services.GeoServiceInterface) error {
				province, err := svc.GetProvinceByCode(args[0], ctx)
				if err != nil {
					return fmt.Errorf("province %q: %w", args[0], err)
				}
				return writeJSON(cmd, province)
			})
		},
	}
}

func newSearchCmd(c *cli) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find provinces whose name contains query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withGeoService(cmd, func(ctx context.Context, svc services.GeoServiceInterface) error {
				provinces, err := svc.SearchProvinces(args[0], lang, ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd, provinces)
			})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "any", "name to match: thai, english or any")
	return cmd
}

func newDistrictsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "districts <province-id>",
		Short: "List the districts of a province",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("province id %q is not an integer", args[0])
			}
			return c.withGeoService(cmd, func(ctx context.Context, svc services.GeoServiceInterface) error {
				districts, err := svc.GetDistrictsByProvinceId(id, ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd, districts)
			})
		},
	}
}

func newHierarchyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "hierarchy <province-id>",
		Short: "Show a province with its districts and sub-district count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("province id %q is not an integer", args[0])
			}
			return c.withGeoService(cmd, func(ctx context.Context, svc services.GeoServiceInterface) error {
				hierarchy, err := svc.GetProvinceHierarchy(id, ctx)
				if err != nil {
					return fmt.Errorf("province %d: %w", id, err)
				}
				return writeJSON(cmd, hierarchy)
			})
		},
	}
}
