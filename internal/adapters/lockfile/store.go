// Package lockfile implements the on-disk lock store.
//
// Each configuration is persisted as "<dir>/<configuration>.lockfile". Writes go to a
// temporary file in the same directory which is then renamed over the target, so a
// reader observes either the previous or the new artifact, never a partial one.
package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.LockStore on a directory of lock artifacts.
// It keeps no state between calls.
type Store struct {
	dir string
}

// NewStore creates a store for the artifacts in dir.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Path returns the artifact path of a configuration.
func (s *Store) Path(configuration string) string {
	return filepath.Join(s.dir, configuration+domain.LockfileExt)
}

// Load reads the lock of a configuration. It returns nil, nil if no artifact exists.
func (s *Store) Load(configuration string) (*domain.LockRecord, error) {
	if err := domain.ValidateConfigurationName(configuration); err != nil {
		return nil, err
	}

	path := s.Path(configuration)
	//nolint:gosec // Path is built from a validated configuration name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", path)
	}

	record, err := Decode(configuration, data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return record, nil
}

// Save atomically replaces the lock of a configuration.
func (s *Store) Save(configuration string, record *domain.LockRecord) error {
	if err := domain.ValidateConfigurationName(configuration); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockDirCreateFailed.Error()), "path", s.dir)
	}

	path := s.Path(configuration)
	if err := atomicWriteFile(path, Encode(record)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}
	return nil
}

// Configurations returns the sorted names of all configurations with an artifact.
func (s *Store) Configurations() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockListFailed.Error()), "path", s.dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), domain.LockfileExt)
		if !ok || domain.ValidateConfigurationName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".pin-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Factory implements ports.LockStoreFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns a Store for dir.
func (f *Factory) Open(dir string) ports.LockStore {
	return NewStore(dir)
}
