package storage

import "github.com/tenderguard/go-tenderguard/pkg/engine"

// Dataset is a scored dataset held by the dashboard between requests.
type Dataset struct {
	ID     string
	Name   string
	Scored engine.ScoredDataset
}

// DatasetStore holds uploaded, already-scored datasets for the dashboard
// layer. Implementations can use any backend; the shipped one is
// in-memory, since durable persistence is out of scope for this service.
//
// The store never re-scores anything: records are scored once at upload
// time and the stored assessment is what every view reads.
type DatasetStore interface {
	// Save persists a dataset under its ID, replacing any previous
	// dataset with the same ID.
	Save(ds *Dataset) error

	// Get retrieves a dataset by ID. Returns nil, nil when the ID is
	// unknown.
	Get(id string) (*Dataset, error)

	// List returns the stored dataset IDs in unspecified order.
	List() ([]string, error)

	// Delete removes a dataset. Deleting an unknown ID is a no-op.
	Delete(id string) error
}
