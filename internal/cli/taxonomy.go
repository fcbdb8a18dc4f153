package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/output"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Show the keyword taxonomy",
	Long: `Display the loaded keyword taxonomy: every category with its keyword
count, and with --keywords the full keyword lists.

Examples:
  grantmatch taxonomy
  grantmatch taxonomy --keywords
  grantmatch taxonomy -o json`,
	RunE: runTaxonomy,
}

var taxonomyKeywords bool

func init() {
	rootCmd.AddCommand(taxonomyCmd)
	taxonomyCmd.Flags().BoolVar(&taxonomyKeywords, "keywords", false, "Show full keyword lists")
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	if outputFmt == "json" {
		if taxonomyKeywords {
			full := make(map[string][]string, len(tax.Categories()))
			for _, name := range tax.Categories() {
				full[name] = tax.Keywords(name)
			}
			return output.JSON(full)
		}
		return output.JSON(tax.Stats())
	}

	stats := tax.Stats()
	fmt.Printf("Taxonomy: %d categories\n\n", len(stats))
	for _, name := range tax.Categories() {
		fmt.Printf("  %-15s %d keywords\n", name, stats[name])
		if taxonomyKeywords {
			for _, kw := range tax.Keywords(name) {
				fmt.Printf("      - %s\n", kw)
			}
		}
	}

	return nil
}
