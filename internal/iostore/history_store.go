package iostore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// HistoryStoreImpl records recommendation runs in a SQL backend.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore initializes and returns a new HistoryStore based on the backend type.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	db, _, err := openDatabase(backend, connStr)
	if err != nil {
		return nil, err
	}

	if db != nil {
		if err := createStoreTables(db, backend); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &HistoryStoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// RecordRun persists one completed run.
func (hs *HistoryStoreImpl) RecordRun(run schema.RunRecord) error {
	if hs.db == nil {
		return nil
	}

	var query string
	if hs.backend == schema.PostgreSQLBackend {
		query = fmt.Sprintf(`INSERT INTO %s (run_id, created_at, preference, result_count, top_language, top_score)
			VALUES ($1, $2, $3, $4, $5, $6)`, runsTable)
	} else {
		query = fmt.Sprintf(`INSERT INTO %s (run_id, created_at, preference, result_count, top_language, top_score)
			VALUES (?, ?, ?, ?, ?, ?)`, runsTable)
	}

	_, err := hs.db.Exec(query, run.RunID, run.CreatedAt.Unix(), run.Preference, run.ResultCount, run.TopLanguage, run.TopScore)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.RunID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first, at most limit.
func (hs *HistoryStoreImpl) ListRuns(limit int) ([]schema.RunRecord, error) {
	if hs.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = contract.DefaultHistoryLimit
	}

	var query string
	if hs.backend == schema.PostgreSQLBackend {
		query = fmt.Sprintf(`SELECT run_id, created_at, preference, result_count, top_language, top_score
			FROM %s ORDER BY created_at DESC, run_id LIMIT $1`, runsTable)
	} else {
		query = fmt.Sprintf(`SELECT run_id, created_at, preference, result_count, top_language, top_score
			FROM %s ORDER BY created_at DESC, run_id LIMIT ?`, runsTable)
	}

	rows, err := hs.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []schema.RunRecord
	for rows.Next() {
		var run schema.RunRecord
		var createdAt int64
		if err := rows.Scan(&run.RunID, &createdAt, &run.Preference, &run.ResultCount, &run.TopLanguage, &run.TopScore); err != nil {
			return nil, err
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   hs.backend,
		Location:  storeLocation(hs.backend, hs.connStr),
		Available: hs.db != nil,
	}
	if hs.db == nil {
		return status, nil
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, runsTable)
	if err := hs.db.QueryRow(countQuery).Scan(&status.RunCount); err != nil {
		return status, fmt.Errorf("failed to count runs: %w", err)
	}
	return status, nil
}

// Close closes the underlying DB connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}
