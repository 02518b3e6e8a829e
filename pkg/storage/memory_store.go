package storage

import (
	"errors"
	"sync"
)

// MemoryStore is a thread-safe in-memory DatasetStore. Uploaded datasets
// live for the lifetime of the process, which matches the dashboard's
// explore-then-discard workflow.
type MemoryStore struct {
	data map[string]*Dataset
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*Dataset),
	}
}

// Save stores a dataset, replacing any previous dataset with the same ID.
func (m *MemoryStore) Save(ds *Dataset) error {
	if ds == nil {
		return errors.New("storage: dataset must not be nil")
	}
	if ds.ID == "" {
		return errors.New("storage: dataset ID must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[ds.ID] = ds
	return nil
}

// Get retrieves a dataset by ID, or nil when unknown.
func (m *MemoryStore) Get(id string) (*Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if ds, exists := m.data[id]; exists {
		return ds, nil
	}
	return nil, nil
}

// List returns all stored dataset IDs.
func (m *MemoryStore) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes a dataset by ID.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}
