package cmd

import (
	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/spf13/cobra"
)

// weightsCmd shows the active scoring weights.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the active dimension weights.",
	Long: `Print the dimension weight table the recommender will use.

Weights come from the defaults overlaid with any 'weights:' section in the
config file. Use this to confirm what a tuned config actually resolves to.

Example .langmatch.yaml section:
  weights:
    difficulty: 0.3
    practical: 0.3

Examples:
  # Show the resolved weight table
  langmatch weights

  # Export as JSON
  langmatch weights --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show weights", err)
		}
	},
}
