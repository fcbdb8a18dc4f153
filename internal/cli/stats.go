package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/output"
	"github.com/arcc-research/grantmatch/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts across the store",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Health(context.Background()); err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}

	stats, err := db.GetStats(context.Background())
	if err != nil {
		return err
	}

	return output.Output(outputFmt, stats)
}
