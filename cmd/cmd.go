// Package cmd defines the command-line interface for langmatch.
package cmd

import (
	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the draft subcommands to the parent draft command
	draftCmd.AddCommand(draftSaveCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftClearCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)
	storeCmd.AddCommand(storeExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog JSON file (empty = embedded catalog)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-result metadata (dimension scores, scripts, resources)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of recommendCmd to Viper
	recommendCmd.Flags().String("survey", "", "Path to a survey submission JSON file")
	recommendCmd.Flags().StringArrayP("answer", "a", nil, "Survey answer override as question=option (repeatable)")
	recommendCmd.Flags().String("draft", contract.DefaultDraftName, "Draft name to load answers from")
	recommendCmd.Flags().Bool("from-draft", false, "Start from the answers saved in the named draft")
	recommendCmd.Flags().Bool("no-record", false, "Skip recording this run in history")
	recommendCmd.Flags().Bool("explain", false, "Print per-result reason breakdown")
	if err := viper.BindPFlags(recommendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding recommend flags", err)
	}

	// Bind all flags of languagesCmd to Viper
	languagesCmd.Flags().StringP("keyword", "k", "", "Filter by substring over id, name, family, regions and tags")
	languagesCmd.Flags().String("category", "", "Filter by category: popular, cultural, business, emerging or niche")
	languagesCmd.Flags().Int("max-difficulty", 0, "Only show languages at or below this difficulty (1-5, 0 = no limit)")
	languagesCmd.Flags().Int64("min-speakers", 0, "Only show languages with at least this many total speakers")
	languagesCmd.Flags().Bool("popular", false, "Only show popular-category languages")
	if err := viper.BindPFlags(languagesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding languages flags", err)
	}

	// Bind all flags of historyCmd to Viper
	historyCmd.Flags().Int("history-limit", contract.DefaultHistoryLimit, "Number of recorded runs to display")
	if err := viper.BindPFlags(historyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
