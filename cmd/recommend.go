package cmd

import (
	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/spf13/cobra"
)

// recommendCmd runs the full recommendation pipeline.
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog languages against your survey answers.",
	Long: `Score every language in the catalog against learner survey answers and
print the top matches.

Each language is scored on five dimensions:
- Difficulty fit against your preferred challenge level
- Cultural alignment with your stated interests
- Practical value from reach and category, shaded by career focus
- Time feasibility given your weekly commitment
- Experience transfer from languages you already know

Answers can come from a saved draft, a survey JSON file, or --answer pairs;
later sources override earlier ones. Missing answers fall back to neutral
defaults, so a bare 'langmatch recommend' works out of the box.

Examples:
  # Recommend with neutral defaults
  langmatch recommend

  # Answer inline
  langmatch recommend -a difficulty_preference=easy -a time_commitment=casual

  # Multi-select answers take a JSON array
  langmatch recommend -a 'cultural_interests=["anime","cuisine"]'

  # Resume a saved draft and add reason breakdowns
  langmatch recommend --from-draft --draft travel --explain

  # Export findings to CSV for tracking
  langmatch recommend --output csv --output-file matches.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecommend(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run recommendation", err)
		}
	},
}
