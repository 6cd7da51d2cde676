package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var seedSources []string

func init() {
	seedCmd.Flags().StringSliceVar(&seedSources, "source", nil, "Seed file path or http(s) URL; repeatable, defaults to SEED_SOURCES")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog entries from JSON or YAML documents",
	Long:  "Create the menus, submenus and dishes described by one or more seed documents. Entries whose title already exists are skipped.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sources := seedSources
		if len(sources) == 0 {
			sources = cfg.Seed.Sources
		}
		if len(sources) == 0 {
			return errors.New("no seed sources: pass --source or set SEED_SOURCES")
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.close()

		stats, err := applySeed(ctx, a, sources)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "menus: %d, submenus: %d, dishes: %d, skipped: %d\n",
			stats.MenusCreated, stats.SubmenusCreated, stats.DishesCreated, stats.Skipped)
		return nil
	},
}
