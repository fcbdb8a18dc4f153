package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/output"
	"github.com/arcc-research/grantmatch/internal/store"
)

var opportunitiesCmd = &cobra.Command{
	Use:     "opportunities",
	Aliases: []string{"opps"},
	Short:   "List harvested funding opportunities",
	Long: `List funding opportunities from the store with optional filters.

Examples:
  grantmatch opportunities                          # All opportunities
  grantmatch opportunities --status posted          # Only posted ones
  grantmatch opportunities --agency NIH             # Filter by agency name
  grantmatch opportunities --keyword vascular       # Search title/description
  grantmatch opportunities --limit 20 --offset 20   # Second page`,
	RunE: runOpportunities,
}

var (
	oppsStatus  string
	oppsAgency  string
	oppsKeyword string
	oppsLimit   int
	oppsOffset  int
)

func init() {
	rootCmd.AddCommand(opportunitiesCmd)

	opportunitiesCmd.Flags().StringVar(&oppsStatus, "status", "", "Filter by status (posted, forecasted, closed, archived)")
	opportunitiesCmd.Flags().StringVar(&oppsAgency, "agency", "", "Filter by agency name (substring)")
	opportunitiesCmd.Flags().StringVar(&oppsKeyword, "keyword", "", "Search title and description (substring)")
	opportunitiesCmd.Flags().IntVar(&oppsLimit, "limit", 0, "Maximum number of results")
	opportunitiesCmd.Flags().IntVar(&oppsOffset, "offset", 0, "Number of results to skip")
}

func runOpportunities(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := store.ListOptions{
		Limit:  oppsLimit,
		Offset: oppsOffset,
	}
	if oppsStatus != "" {
		opts.Statuses = []string{oppsStatus}
	}
	if oppsAgency != "" {
		opts.Agency = &oppsAgency
	}
	if oppsKeyword != "" {
		opts.Keyword = &oppsKeyword
	}

	opps, err := db.ListOpportunities(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list opportunities: %w", err)
	}

	return output.Output(outputFmt, opps)
}
