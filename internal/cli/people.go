package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/output"
	"github.com/arcc-research/grantmatch/internal/store"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List tracked researchers",
	RunE:  runPeople,
}

func init() {
	rootCmd.AddCommand(peopleCmd)
}

func runPeople(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	people, err := db.ListPeople(context.Background())
	if err != nil {
		return err
	}

	return output.Output(outputFmt, people)
}
