package domain

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// LockEntry pins one module coordinate to an exact version.
type LockEntry struct {
	Coordinate ModuleCoordinate
	Version    string
}

// String returns the entry as it appears in a lock artifact: "group:module=version".
func (e LockEntry) String() string {
	return e.Coordinate.String() + "=" + e.Version
}

// LockRecord is the immutable set of lock entries of one configuration.
// Entries are kept sorted by coordinate; a new record is built for every update.
type LockRecord struct {
	entries []LockEntry
	index   map[ModuleCoordinate]string
}

// NewLockRecord builds a record from entries, in any order.
// It fails with ErrInvalidCoordinate or ErrInvalidVersion if an entry cannot be
// written to an artifact, and with ErrDuplicateCoordinate if two entries share a coordinate.
func NewLockRecord(entries ...LockEntry) (*LockRecord, error) {
	r := &LockRecord{
		entries: make([]LockEntry, 0, len(entries)),
		index:   make(map[ModuleCoordinate]string, len(entries)),
	}
	for _, e := range entries {
		if err := ValidateCoordinate(e.Coordinate); err != nil {
			return nil, err
		}
		if err := ValidateVersion(e.Version); err != nil {
			return nil, zerr.With(err, "coordinate", e.Coordinate.String())
		}
		if _, exists := r.index[e.Coordinate]; exists {
			return nil, duplicateCoordinateError(e.Coordinate, r.index[e.Coordinate], e.Version)
		}
		r.index[e.Coordinate] = e.Version
		r.entries = append(r.entries, e)
	}
	slices.SortFunc(r.entries, func(a, b LockEntry) int {
		return a.Coordinate.Compare(b.Coordinate)
	})
	return r, nil
}

// NewLockRecordFromResolved builds a record from the modules selected by the resolver.
// Identical modules collapse into one entry. Two modules sharing a coordinate with
// different versions fail with ErrDuplicateCoordinate; the reported coordinate is
// the first conflicting one in lock order, independent of input order.
func NewLockRecordFromResolved(modules []ResolvedModule) (*LockRecord, error) {
	sorted := slices.Clone(modules)
	slices.SortFunc(sorted, func(a, b ResolvedModule) int {
		if c := a.Coordinate.Compare(b.Coordinate); c != 0 {
			return c
		}
		return strings.Compare(a.Version, b.Version)
	})

	entries := make([]LockEntry, 0, len(sorted))
	for i, m := range sorted {
		if i > 0 && sorted[i-1].Coordinate == m.Coordinate {
			if sorted[i-1].Version == m.Version {
				continue
			}
			return nil, duplicateCoordinateError(m.Coordinate, sorted[i-1].Version, m.Version)
		}
		entries = append(entries, LockEntry{Coordinate: m.Coordinate, Version: m.Version})
	}
	return NewLockRecord(entries...)
}

// MustLockRecord is like NewLockRecord but panics on invalid input.
func MustLockRecord(entries ...LockEntry) *LockRecord {
	r, err := NewLockRecord(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of entries.
func (r *LockRecord) Len() int {
	return len(r.entries)
}

// Entries returns a sorted copy of the entries.
func (r *LockRecord) Entries() []LockEntry {
	return slices.Clone(r.entries)
}

// All returns an iterator over the entries in lock order.
func (r *LockRecord) All() iter.Seq[LockEntry] {
	return func(yield func(LockEntry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Version returns the locked version of a coordinate.
func (r *LockRecord) Version(c ModuleCoordinate) (string, bool) {
	v, ok := r.index[c]
	return v, ok
}

// Constraints returns one dependency constraint per entry, in lock order.
func (r *LockRecord) Constraints() []DependencyConstraint {
	out := make([]DependencyConstraint, len(r.entries))
	for i, e := range r.entries {
		out[i] = DependencyConstraint{Coordinate: e.Coordinate, Version: e.Version}
	}
	return out
}

// Equal reports whether both records hold the same entries.
func (r *LockRecord) Equal(other *LockRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	return slices.Equal(r.entries, other.entries)
}

// Fingerprint returns the xxhash of the record's artifact form as 16 hex digits.
// It equals the hash of the bytes written by the lock store.
func (r *LockRecord) Fingerprint() string {
	hasher := xxhash.New()
	for _, e := range r.entries {
		_, _ = hasher.WriteString(e.String())
		_, _ = hasher.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

func duplicateCoordinateError(c ModuleCoordinate, v1, v2 string) error {
	versions := []string{v1, v2}
	slices.Sort(versions)
	err := zerr.Wrap(ErrDuplicateCoordinate, c.String())
	err = zerr.With(err, "coordinate", c.String())
	return zerr.With(err, "versions", versions)
}
