package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/taxonomy"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	debugMode  bool
)

// SetVersionInfo sets version information from build flags.
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "grantmatch",
	Short: "Match funding opportunities to a PI's research profile",
	Long: `grantmatch ranks external funding announcements against a principal
investigator's body of work so that the most topically and temporally
relevant opportunities surface first.

It provides:
  - A keyword-taxonomy research profile derived from projects and publications
  - Hard pass/fail screening of candidate announcements
  - Semantic, timing, and track-record component scores with custom weighting
  - Ranked results with a full score breakdown`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/grantmatch/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "grantmatch", "config.toml")
	}
}

// loadTaxonomy loads the configured taxonomy file, falling back to the
// embedded default when no path is set. A broken taxonomy file is fatal: a
// partial keyword set would silently degrade every score.
func loadTaxonomy(cfg *config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.Taxonomy.Path == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(cfg.Taxonomy.Path)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grantmatch %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
