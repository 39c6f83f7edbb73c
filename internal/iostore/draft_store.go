package iostore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// DraftStoreImpl stores survey drafts in a SQL backend.
type DraftStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.DraftStore = &DraftStoreImpl{} // Compile-time check

// NewDraftStore initializes and returns a new DraftStore based on the backend type.
func NewDraftStore(backend schema.DatabaseBackend, connStr string) (contract.DraftStore, error) {
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

	return &DraftStoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// LoadDraft returns all saved answers for the named draft.
func (ds *DraftStoreImpl) LoadDraft(name string) (map[string]string, error) {
	answers := make(map[string]string)
	if ds.db == nil {
		return answers, nil
	}

	query := fmt.Sprintf(`SELECT question_id, answer FROM %s WHERE draft_name = %s`, draftsTable, ds.placeholder(1))
	rows, err := ds.db.Query(query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft %q: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var question, answer string
		if err := rows.Scan(&question, &answer); err != nil {
			return nil, err
		}
		answers[question] = answer
	}
	return answers, rows.Err()
}

// SaveDraft merges the answers into the named draft.
func (ds *DraftStoreImpl) SaveDraft(name string, answers map[string]string) error {
	if ds.db == nil || len(answers) == 0 {
		return nil
	}

	query := ds.upsertQuery()
	now := time.Now().Unix()
	for question, answer := range answers {
		if _, err := ds.db.Exec(query, name, question, answer, now); err != nil {
			return fmt.Errorf("failed to save draft %q: %w", name, err)
		}
	}
	return nil
}

// ClearDraft removes the named draft.
func (ds *DraftStoreImpl) ClearDraft(name string) error {
	if ds.db == nil {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE draft_name = %s`, draftsTable, ds.placeholder(1))
	_, err := ds.db.Exec(query, name)
	return err
}

// ListDrafts returns the names of all saved drafts.
func (ds *DraftStoreImpl) ListDrafts() ([]string, error) {
	if ds.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT DISTINCT draft_name FROM %s ORDER BY draft_name`, draftsTable)
	rows, err := ds.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetStatus returns status information about the draft store.
func (ds *DraftStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   ds.backend,
		Location:  storeLocation(ds.backend, ds.connStr),
		Available: ds.db != nil,
	}
	if ds.db == nil {
		return status, nil
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT draft_name) FROM %s`, draftsTable)
	if err := ds.db.QueryRow(countQuery).Scan(&status.RunCount); err != nil {
		return status, fmt.Errorf("failed to count drafts: %w", err)
	}
	return status, nil
}

// Close closes the underlying DB connection.
func (ds *DraftStoreImpl) Close() error {
	if ds.db != nil {
		return ds.db.Close()
	}
	return nil
}

// placeholder returns the parameter placeholder for the backend.
func (ds *DraftStoreImpl) placeholder(n int) string {
	if ds.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// upsertQuery returns the UPSERT query for one draft answer.
func (ds *DraftStoreImpl) upsertQuery() string {
	switch ds.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (draft_name, question_id, answer, updated_at) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE answer = new.answer, updated_at = new.updated_at`, draftsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (draft_name, question_id, answer, updated_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (draft_name, question_id) DO UPDATE SET answer = EXCLUDED.answer, updated_at = EXCLUDED.updated_at`, draftsTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (draft_name, question_id, answer, updated_at) VALUES (?, ?, ?, ?)`, draftsTable)
	}
}
