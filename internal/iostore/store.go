package iostore

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// Table names for persistence. migrationsTable is golang-migrate's version
// ledger; clearing must drop it too so a later migrate starts from scratch.
const (
	draftsTable     = "langmatch_drafts"
	runsTable       = "langmatch_runs"
	migrationsTable = "schema_migrations"
)

// openDatabase opens the backing database for the given backend. For the
// none backend it returns a nil handle, which every store treats as a no-op.
func openDatabase(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetStoreDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		return nil, "", nil

	default:
		return nil, "", fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("failed to connect to %s database: %w. Check that the server is running and connection parameters are valid", backend, err)
	}

	return db, driverName, nil
}

// createStoreTables creates the draft and run tables if they do not exist.
func createStoreTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{draftsTable, getCreateDraftsQuery(backend)},
		{runsTable, getCreateRunsQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateDraftsQuery returns the CREATE TABLE query for the drafts table.
func getCreateDraftsQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				draft_name VARCHAR(64) NOT NULL,
				question_id VARCHAR(64) NOT NULL,
				answer TEXT NOT NULL,
				updated_at BIGINT NOT NULL,
				PRIMARY KEY (draft_name, question_id)
			);
		`, draftsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				draft_name TEXT NOT NULL,
				question_id TEXT NOT NULL,
				answer TEXT NOT NULL,
				updated_at BIGINT NOT NULL,
				PRIMARY KEY (draft_name, question_id)
			);
		`, draftsTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				draft_name TEXT NOT NULL,
				question_id TEXT NOT NULL,
				answer TEXT NOT NULL,
				updated_at INTEGER NOT NULL,
				PRIMARY KEY (draft_name, question_id)
			);
		`, draftsTable)
	}
}

// getCreateRunsQuery returns the CREATE TABLE query for the runs table.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id VARCHAR(36) PRIMARY KEY,
				created_at BIGINT NOT NULL,
				preference TEXT NOT NULL,
				result_count INT NOT NULL,
				top_language VARCHAR(64) NOT NULL,
				top_score DOUBLE NOT NULL
			);
		`, runsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id TEXT PRIMARY KEY,
				created_at BIGINT NOT NULL,
				preference TEXT NOT NULL,
				result_count INTEGER NOT NULL,
				top_language TEXT NOT NULL,
				top_score DOUBLE PRECISION NOT NULL
			);
		`, runsTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id TEXT PRIMARY KEY,
				created_at INTEGER NOT NULL,
				preference TEXT NOT NULL,
				result_count INTEGER NOT NULL,
				top_language TEXT NOT NULL,
				top_score REAL NOT NULL
			);
		`, runsTable)
	}
}

// storeLocation describes where the store lives, for status output.
func storeLocation(backend schema.DatabaseBackend, connStr string) string {
	if backend == schema.SQLiteBackend && connStr == "" {
		return contract.GetStoreDBFilePath()
	}
	return connStr
}
