package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the langmatch build version.",
	Long: `Print the release version, git commit and build timestamp baked into
this binary, plus the Go runtime it was compiled with.

Recommendation output depends on the embedded catalog and the scoring
weights of a given release, so include this output when reporting a
result that looks off.

Examples:
  # Identify the installed build
  langmatch version`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("langmatch CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
