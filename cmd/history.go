package cmd

import (
	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/spf13/cobra"
)

// historyCmd shows recently recorded runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded recommendation runs.",
	Long: `List past recommendation runs recorded in the store, newest first.

Each run records when it happened, the preferences used, how many results
were produced and the top-ranked language. Use --no-record on the
recommend command to keep a run out of this list.

Examples:
  # Show the most recent runs
  langmatch history

  # Show more of them, as JSON
  langmatch history --history-limit 50 --output json

  # Export run history to CSV
  langmatch history --output csv --output-file runs.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistory(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show history", err)
		}
	},
}
