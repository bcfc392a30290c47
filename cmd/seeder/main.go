package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rollforteams/internal/config"
	"github.com/mauv0809/rollforteams/internal/player"
	"github.com/mauv0809/rollforteams/internal/storage"
	"github.com/spf13/cobra"
)

var defaultRoster = []string{
	"Seeder Player A",
	"Seeder Player B",
	"Seeder Player C",
	"Seeder Player D",
	"Seeder Player E",
	"Seeder Player F",
}

var clearFirst bool

var rootCmd = &cobra.Command{
	Use:   "seeder [names...]",
	Short: "Populate the player store",
	Long: `Adds the given player names to the configured player store.
Without arguments a default roster is added.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, teardown, err := storage.Open(cfg)
		if err != nil {
			return err
		}
		defer teardown()

		names := args
		if len(names) == 0 {
			names = defaultRoster
		}
		return seed(cmd.Context(), store, names, clearFirst)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&clearFirst, "clear", false, "Remove all existing players before seeding")
}

// seed optionally clears the store, then adds each name in order.
func seed(ctx context.Context, store player.Store, names []string, reset bool) error {
	log.Info("Starting player seeder...", "count", len(names), "clear", reset)
	if reset {
		if err := store.Clear(ctx); err != nil {
			return err
		}
	}
	for _, name := range names {
		if _, err := store.Add(ctx, name); err != nil {
			return fmt.Errorf("failed to seed %q: %w", name, err)
		}
	}
	log.Info("Successfully seeded players.", "count", len(names))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error("Seeder failed", "error", err)
		os.Exit(1)
	}
}
