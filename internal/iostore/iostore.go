// Package iostore persists survey drafts and recommendation run history.
package iostore

import (
	"sync"

	"github.com/langworld/langmatch/internal/contract"
)

// StoreManagerImpl manages the draft and history store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	drafts       contract.DraftStore
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetDraftStore returns the draft store.
func (mgr *StoreManagerImpl) GetDraftStore() contract.DraftStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.drafts
}

// GetHistoryStore returns the history store.
func (mgr *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
