package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderguard/go-tenderguard/pkg/engine"
	"github.com/tenderguard/go-tenderguard/pkg/storage"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	store := storage.NewMemoryStore()
	ds := &storage.Dataset{
		ID:     "ds-1",
		Name:   "mock_data.csv",
		Scored: engine.ScoredDataset{Contracts: []engine.ScoredContract{}},
	}

	require.NoError(t, store.Save(ds))

	got, err := store.Get("ds-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "mock_data.csv", got.Name)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := storage.NewMemoryStore()

	got, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreSaveValidation(t *testing.T) {
	store := storage.NewMemoryStore()

	assert.Error(t, store.Save(nil))
	assert.Error(t, store.Save(&storage.Dataset{}))
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	store := storage.NewMemoryStore()

	require.NoError(t, store.Save(&storage.Dataset{ID: "ds-1", Name: "first.csv"}))
	require.NoError(t, store.Save(&storage.Dataset{ID: "ds-1", Name: "second.csv"}))

	got, err := store.Get("ds-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second.csv", got.Name)
}

func TestMemoryStoreListAndDelete(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(&storage.Dataset{ID: "ds-1"}))
	require.NoError(t, store.Save(&storage.Dataset{ID: "ds-2"}))

	ids, err := store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ds-1", "ds-2"}, ids)

	require.NoError(t, store.Delete("ds-1"))
	require.NoError(t, store.Delete("never-existed"))

	ids, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"ds-2"}, ids)
}
