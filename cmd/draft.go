package cmd

import (
	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/spf13/cobra"
)

// draftCmd groups the survey draft subcommands.
var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage saved survey drafts",
	Long: `Manage partially answered surveys saved in the store.

Drafts let you build up survey answers across sessions: save a few answers
now, add more later, then run 'langmatch recommend --from-draft' when the
draft is ready. Saving into an existing draft merges answers per question.

Subcommands:
  save  - Merge --answer pairs into a named draft
  show  - Print the answers saved in a draft
  list  - List all saved draft names
  clear - Remove a draft

Examples:
  # Build a draft over two sessions
  langmatch draft save -a difficulty_preference=easy
  langmatch draft save -a 'cultural_interests=["music","cinema"]'

  # Inspect and use it
  langmatch draft show
  langmatch recommend --from-draft`,
}

// draftSaveCmd merges answers into a draft.
var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Merge --answer pairs into a named draft",
	Long: `Validate and save --answer pairs into the named draft.

Answers merge per question: saving a question that already exists in the
draft overwrites only that answer. Malformed answers are rejected before
anything is written.

Examples:
  # Save into the default draft
  langmatch draft save -a time_commitment=intensive

  # Keep separate drafts per goal
  langmatch draft save --draft career -a practical_focus=career`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDraftSave(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot save draft", err)
		}
	},
}

// draftShowCmd prints a draft's answers.
var draftShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print the answers saved in a draft",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDraftShow(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show draft", err)
		}
	},
}

// draftListCmd lists saved draft names.
var draftListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all saved draft names",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDraftList(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list drafts", err)
		}
	},
}

// draftClearCmd removes a draft.
var draftClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove a saved draft",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDraftClear(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot clear draft", err)
		}
	},
}
