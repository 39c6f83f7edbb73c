package iostore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

func newTestHistoryStore(t *testing.T) contract.HistoryStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRun(createdAt time.Time, topLanguage string, topScore float64) schema.RunRecord {
	return schema.RunRecord{
		RunID:       uuid.NewString(),
		CreatedAt:   createdAt,
		Preference:  `{"difficultyPreference":3}`,
		ResultCount: 10,
		TopLanguage: topLanguage,
		TopScore:    topScore,
	}
}

func TestHistoryStoreRoundTrip(t *testing.T) {
	store := newTestHistoryStore(t)

	run := sampleRun(time.Now(), "spanish", 87.5)
	require.NoError(t, store.RecordRun(run))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, run.RunID, runs[0].RunID)
	assert.Equal(t, run.Preference, runs[0].Preference)
	assert.Equal(t, run.ResultCount, runs[0].ResultCount)
	assert.Equal(t, run.TopLanguage, runs[0].TopLanguage)
	assert.InDelta(t, run.TopScore, runs[0].TopScore, 1e-9)
	assert.Equal(t, run.CreatedAt.Unix(), runs[0].CreatedAt.Unix())
}

func TestHistoryStoreNewestFirst(t *testing.T) {
	store := newTestHistoryStore(t)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, store.RecordRun(sampleRun(base, "german", 60)))
	require.NoError(t, store.RecordRun(sampleRun(base.Add(time.Minute), "french", 70)))
	require.NoError(t, store.RecordRun(sampleRun(base.Add(2*time.Minute), "spanish", 80)))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "spanish", runs[0].TopLanguage)
	assert.Equal(t, "french", runs[1].TopLanguage)
	assert.Equal(t, "german", runs[2].TopLanguage)
}

func TestHistoryStoreLimit(t *testing.T) {
	store := newTestHistoryStore(t)

	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		require.NoError(t, store.RecordRun(sampleRun(base.Add(time.Duration(i)*time.Minute), "spanish", 50)))
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestHistoryStoreDuplicateRunID(t *testing.T) {
	store := newTestHistoryStore(t)

	run := sampleRun(time.Now(), "spanish", 80)
	require.NoError(t, store.RecordRun(run))
	assert.Error(t, store.RecordRun(run))
}

func TestHistoryStoreStatus(t *testing.T) {
	store := newTestHistoryStore(t)

	require.NoError(t, store.RecordRun(sampleRun(time.Now(), "spanish", 80)))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.True(t, status.Available)
	assert.Equal(t, int64(1), status.RunCount)
}

func TestHistoryStoreNoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.NoError(t, store.RecordRun(sampleRun(time.Now(), "spanish", 80)))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
