package iostore

import (
	"github.com/stretchr/testify/mock"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetDraftStore implements the StoreManager interface.
func (m *MockStoreManager) GetDraftStore() contract.DraftStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.DraftStore)
	return store
}

// GetHistoryStore implements the StoreManager interface.
func (m *MockStoreManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockDraftStore is a mock implementation of DraftStore for testing.
type MockDraftStore struct {
	mock.Mock
}

var _ contract.DraftStore = &MockDraftStore{} // Compile-time check

// LoadDraft implements the DraftStore interface.
func (m *MockDraftStore) LoadDraft(name string) (map[string]string, error) {
	args := m.Called(name)
	answers, _ := args.Get(0).(map[string]string)
	return answers, args.Error(1)
}

// SaveDraft implements the DraftStore interface.
func (m *MockDraftStore) SaveDraft(name string, answers map[string]string) error {
	args := m.Called(name, answers)
	return args.Error(0)
}

// ClearDraft implements the DraftStore interface.
func (m *MockDraftStore) ClearDraft(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// ListDrafts implements the DraftStore interface.
func (m *MockDraftStore) ListDrafts() ([]string, error) {
	args := m.Called()
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

// GetStatus implements the DraftStore interface.
func (m *MockDraftStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the DraftStore interface.
func (m *MockDraftStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// RecordRun implements the HistoryStore interface.
func (m *MockHistoryStore) RecordRun(run schema.RunRecord) error {
	args := m.Called(run)
	return args.Error(0)
}

// ListRuns implements the HistoryStore interface.
func (m *MockHistoryStore) ListRuns(limit int) ([]schema.RunRecord, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
