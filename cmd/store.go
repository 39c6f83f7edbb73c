package cmd

import (
	"errors"
	"fmt"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/internal/iostore"
	"github.com/langworld/langmatch/internal/parquet"
	"github.com/langworld/langmatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportRunsLimit bounds a full-history export. Effectively "all runs" for
// any realistic store size.
const exportRunsLimit = 1_000_000

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize persistence with the loaded config
	if err := iostore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeCmd focused on persistence management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by recommendation commands. This avoids catalog
// loading and survey parsing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the draft and run-history store",
	Long: `Manage the persistence layer holding survey drafts and run history.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all saved drafts and run history
  migrate - Run schema migrations against the configured backend
  export  - Export run history to a Parquet file

Examples:
  # Check store status
  langmatch store status

  # Start fresh
  langmatch store clear`,
}

// storeStatusCmd shows status for both stores.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the draft and run-history stores.

Displays backend type, location, availability and entry counts for each.

Examples:
  # Check store status
  langmatch store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		drafts := iostore.Manager.GetDraftStore()
		history := iostore.Manager.GetHistoryStore()
		if drafts == nil || history == nil {
			fmt.Println("Store backend is 'none'; nothing to report.")
			return
		}

		draftStatus, err := drafts.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get draft store status", err)
		}
		historyStatus, err := history.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history store status", err)
		}

		iostore.PrintStoreStatus("Drafts", draftStatus)
		iostore.PrintStoreStatus("Runs", historyStatus)
	},
}

// storeClearCmd clears all persisted data.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved drafts and run history",
	Long: `Delete all drafts and recorded runs from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the draft and run tables

Examples:
  # Clear the SQLite store (default)
  langmatch store clear

  # Clear a MySQL store (set connection string via env variable)
  LANGMATCH_STORE_BACKEND=mysql LANGMATCH_STORE_DB_CONNECT="..." langmatch store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ClearStores(cfg.StoreBackend, contract.GetStoreDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd runs schema migrations.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations against the store backend",
	Long: `Apply or roll back the store's schema migrations.

Use --target-version to pick a version: -1 migrates to the latest,
0 rolls everything back, and a positive number targets that version.

Examples:
  # Migrate to the latest schema
  langmatch store migrate

  # Roll back completely
  langmatch store migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeMigrateSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateStores(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// storeExportCmd exports run history to Parquet.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to a Parquet file",
	Long: `Export all recorded runs to a Parquet file for offline analysis.

Examples:
  # Export run history
  langmatch store export --output-file runs.parquet`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.OutputFile == "" {
			contract.LogFatal("Cannot export runs", errors.New("--output-file is required"))
		}

		history := iostore.Manager.GetHistoryStore()
		if history == nil {
			contract.LogFatal("Cannot export runs", errors.New("store backend is 'none'"))
		}

		runs, err := history.ListRuns(exportRunsLimit)
		if err != nil {
			contract.LogFatal("Failed to list runs", err)
		}

		rows := parquet.ConvertRunRecords(runs)
		if err := parquet.WriteRunsParquet(rows, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to write Parquet output", err)
		}
		fmt.Printf("Exported %d runs to: %s\n", len(rows), cfg.OutputFile)
	},
}
