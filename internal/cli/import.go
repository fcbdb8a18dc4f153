package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/logger"
	"github.com/arcc-research/grantmatch/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import harvested data from a JSON export",
	Long: `Import people, projects, publications, grant history, and funding
opportunities from a JSON file.

The file is an object with any subset of the keys "people", "projects",
"publications", "grant_history", and "opportunities", each an array of
records. Opportunities are upserted by opportunity number, so re-importing
a newer harvest refreshes statuses and dates in place.

Examples:
  grantmatch import harvest.json
  grantmatch import pi_roster.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// importFile mirrors the export layout produced by the harvest scripts.
type importFile struct {
	People        []store.Person      `json:"people"`
	Projects      []store.Project     `json:"projects"`
	Publications  []store.Publication `json:"publications"`
	GrantHistory  []store.GrantRecord `json:"grant_history"`
	Opportunities []store.Opportunity `json:"opportunities"`
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.JSON, debugMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	var in importFile
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	for i := range in.People {
		if err := db.CreatePerson(ctx, &in.People[i]); err != nil {
			return fmt.Errorf("importing person %q: %w", in.People[i].FullName, err)
		}
	}
	for i := range in.Projects {
		if err := db.CreateProject(ctx, &in.Projects[i]); err != nil {
			return fmt.Errorf("importing project %q: %w", in.Projects[i].Title, err)
		}
	}
	for i := range in.Publications {
		if err := db.CreatePublication(ctx, &in.Publications[i]); err != nil {
			return fmt.Errorf("importing publication %q: %w", in.Publications[i].Title, err)
		}
	}
	for i := range in.GrantHistory {
		if err := db.CreateGrantRecord(ctx, &in.GrantHistory[i]); err != nil {
			return fmt.Errorf("importing grant record: %w", err)
		}
	}
	for i := range in.Opportunities {
		if err := db.UpsertOpportunity(ctx, &in.Opportunities[i]); err != nil {
			return fmt.Errorf("importing opportunity %q: %w", in.Opportunities[i].Title, err)
		}
	}

	log.Info("import complete",
		zap.String("file", args[0]),
		zap.Int("people", len(in.People)),
		zap.Int("projects", len(in.Projects)),
		zap.Int("publications", len(in.Publications)),
		zap.Int("grant_records", len(in.GrantHistory)),
		zap.Int("opportunities", len(in.Opportunities)),
	)

	fmt.Printf("Imported %d people, %d projects, %d publications, %d grant records, %d opportunities\n",
		len(in.People), len(in.Projects), len(in.Publications), len(in.GrantHistory), len(in.Opportunities))

	return nil
}
