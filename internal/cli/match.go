package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcc-research/grantmatch/internal/config"
	"github.com/arcc-research/grantmatch/internal/logger"
	"github.com/arcc-research/grantmatch/internal/matcher"
	"github.com/arcc-research/grantmatch/internal/output"
	"github.com/arcc-research/grantmatch/internal/store"
)

var matchCmd = &cobra.Command{
	Use:   "match <pi>",
	Short: "Rank funding opportunities for a PI",
	Long: `Score all posted and forecasted funding opportunities against a PI's
research profile and print the best matches.

The PI may be given by ID or full name. The profile is built once from the
PI's tracked projects and publications and reused for every candidate.

Examples:
  grantmatch match "Maria Alvarez"                 # Top matches, default weights
  grantmatch match "Maria Alvarez" --limit 5       # Only the top 5
  grantmatch match "Maria Alvarez" --preset timing # Prioritize timing fit
  grantmatch match "Maria Alvarez" --semantic 0.8 --time 0.1 --eligibility 0.1
  grantmatch match "Maria Alvarez" -o json         # Full breakdown as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

var (
	matchLimit     int
	matchPreset    string
	matchSemanticW float64
	matchTimeW     float64
	matchEligibleW float64
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntVar(&matchLimit, "limit", 0, "Maximum number of results (default from config)")
	matchCmd.Flags().StringVar(&matchPreset, "preset", "",
		fmt.Sprintf("Weight preset (%s)", strings.Join(matcher.PresetNames(), ", ")))
	matchCmd.Flags().Float64Var(&matchSemanticW, "semantic", 0, "Semantic similarity weight")
	matchCmd.Flags().Float64Var(&matchTimeW, "time", 0, "Time alignment weight")
	matchCmd.Flags().Float64Var(&matchEligibleW, "eligibility", 0, "Eligibility weight")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.JSON, debugMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	// Open database
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Resolve the PI
	person, err := db.FindPerson(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to look up PI: %w", err)
	}
	if person == nil {
		return fmt.Errorf("no PI found matching %q", args[0])
	}

	// Build the profile once and reuse it for every candidate
	builder := matcher.NewProfileBuilder(tax, store.NewSource(db))
	profile, err := builder.Build(ctx, person.ID)
	if err != nil {
		return fmt.Errorf("failed to build research profile: %w", err)
	}

	log.Debug("research profile built",
		zap.String("pi", person.FullName),
		zap.Int("categories", profile.Categories.Len()),
		zap.Int("projects", len(profile.Projects)),
		zap.Int("grant_records", len(profile.GrantHistory)),
	)

	weights, err := resolveWeights(cmd, cfg)
	if err != nil {
		return err
	}

	// Fetch open candidates
	opps, err := db.ListOpportunities(ctx, store.ListOptions{
		Statuses: []string{string(matcher.StatusPosted), string(matcher.StatusForecasted)},
	})
	if err != nil {
		return fmt.Errorf("failed to list opportunities: %w", err)
	}

	candidates := make([]matcher.Candidate, 0, len(opps))
	for _, o := range opps {
		candidates = append(candidates, store.CandidateFromOpportunity(o))
	}

	limit := matchLimit
	if limit == 0 {
		limit = cfg.Matching.Limit
	}

	engine := matcher.NewEngine(tax,
		matcher.WithThresholds(cfg.Matching.MinSemanticScore, cfg.Matching.MinTimeScore))
	results := engine.Rank(profile, candidates, weights, limit)

	log.Info("opportunities ranked",
		zap.String("pi", person.FullName),
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", len(results)),
	)

	return output.Output(outputFmt, results)
}

// resolveWeights picks the weight vector for this run: individual flag
// overrides win over a preset, which wins over the configured defaults.
func resolveWeights(cmd *cobra.Command, cfg *config.Config) (matcher.Weights, error) {
	weights := cfg.Matching.Weights.Weights()

	if matchPreset != "" {
		preset, ok := matcher.Preset(matchPreset)
		if !ok {
			return matcher.Weights{}, fmt.Errorf("unknown preset %q (available: %s)",
				matchPreset, strings.Join(matcher.PresetNames(), ", "))
		}
		weights = preset
	}

	if cmd.Flags().Changed("semantic") {
		weights.Semantic = matchSemanticW
	}
	if cmd.Flags().Changed("time") {
		weights.Time = matchTimeW
	}
	if cmd.Flags().Changed("eligibility") {
		weights.Eligibility = matchEligibleW
	}

	if weights.Semantic < 0 || weights.Time < 0 || weights.Eligibility < 0 {
		return matcher.Weights{}, fmt.Errorf("weights must not be negative")
	}

	return weights, nil
}
