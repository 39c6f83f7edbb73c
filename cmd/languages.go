package cmd

import (
	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/spf13/cobra"
)

// languagesCmd browses the catalog without scoring it.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Browse and filter the language catalog.",
	Long: `List catalog entries sorted by total speakers, with optional filters.

Useful for exploring what the recommender can draw from:
- Search by keyword across names, families, regions and cultural tags
- Narrow to a single category or a difficulty ceiling
- Require a minimum speaker base

Examples:
  # Show the whole catalog
  langmatch languages

  # Easy languages with a large speaker base
  langmatch languages --max-difficulty 2 --min-speakers 100000000

  # Everything tagged or located around east asia
  langmatch languages -k "east asia"

  # Popular languages only, with scripts and resource counts
  langmatch languages --popular --detail`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLanguages(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list languages", err)
		}
	},
}
