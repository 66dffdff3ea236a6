// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/pin/internal/core/domain"

// LockStore persists one lock record per configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Load reads the lock of a configuration.
	// Returns nil, nil if the configuration has no lock artifact.
	Load(configuration string) (*domain.LockRecord, error)

	// Save atomically replaces the lock of a configuration.
	Save(configuration string, record *domain.LockRecord) error

	// Configurations returns the sorted names of all configurations that have a lock artifact.
	Configurations() ([]string, error)
}

// LockStoreFactory opens lock stores rooted at a directory.
type LockStoreFactory interface {
	// Open returns a store reading and writing artifacts in dir.
	// The directory is created on the first Save.
	Open(dir string) LockStore
}
