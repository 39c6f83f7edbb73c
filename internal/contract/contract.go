// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/langworld/langmatch/schema"
)

// StoreManager defines the interface for managing persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetDraftStore() DraftStore
	GetHistoryStore() HistoryStore
}

// DraftStore persists in-progress survey answers between invocations, so a
// user can fill the survey across several commands before asking for
// recommendations.
type DraftStore interface {
	// LoadDraft returns the saved answers for a named draft. A missing
	// draft yields an empty map, not an error.
	LoadDraft(name string) (map[string]string, error)

	// SaveDraft merges the given answers into the named draft, overwriting
	// answers for questions that already have one.
	SaveDraft(name string, answers map[string]string) error

	// ClearDraft removes the named draft. Clearing a missing draft is a no-op.
	ClearDraft(name string) error

	// ListDrafts returns the names of all saved drafts.
	ListDrafts() ([]string, error)

	// GetStatus returns status information about the draft store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// HistoryStore records completed recommendation runs.
type HistoryStore interface {
	// RecordRun persists one completed run.
	RecordRun(run schema.RunRecord) error

	// ListRuns returns the most recent runs, newest first, at most limit.
	ListRuns(limit int) ([]schema.RunRecord, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
