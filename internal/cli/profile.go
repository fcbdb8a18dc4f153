package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/matcher"
	"github.com/arcc-research/grantmatch/internal/output"
	"github.com/arcc-research/grantmatch/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile <pi>",
	Short: "Show a PI's derived research profile",
	Long: `Build and display the research-topic profile for a PI: the taxonomy
categories found in their project and publication records, their tracked
projects, and their grant history.

Examples:
  grantmatch profile "Maria Alvarez"
  grantmatch profile "Maria Alvarez" -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	person, err := db.FindPerson(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to look up PI: %w", err)
	}
	if person == nil {
		return fmt.Errorf("no PI found matching %q", args[0])
	}

	builder := matcher.NewProfileBuilder(tax, store.NewSource(db))
	profile, err := builder.Build(ctx, person.ID)
	if err != nil {
		return fmt.Errorf("failed to build research profile: %w", err)
	}

	return output.Output(outputFmt, profile)
}
