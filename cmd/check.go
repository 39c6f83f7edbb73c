package cmd

import (
	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd validates the catalog for CI/CD gating.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the language catalog.",
	Long: `Validate the configured catalog and print a concise summary.

Checks that every entry has a unique id, a difficulty in range, a known
category and consistent speaker counts. Returns a non-zero exit code if
any entry fails, which makes this suitable for CI gating of catalog edits.

Examples:
  # Validate the embedded catalog
  langmatch check

  # Validate a catalog file before shipping it
  langmatch check --catalog data/languages.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCatalogCheck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Catalog check failed", err)
		}
	},
}
