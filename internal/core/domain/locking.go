package domain

import (
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// LockMode is the enforcement policy applied when a resolution drifts from its lock.
type LockMode string

const (
	// LockModeStrict fails on every drift: missing, extra and mismatched modules.
	LockModeStrict LockMode = "strict"
	// LockModeLenient accepts missing and extra modules and only fails on version mismatches.
	LockModeLenient LockMode = "lenient"
)

// ParseLockMode converts a configuration value to a LockMode. An empty value means strict.
func ParseLockMode(s string) (LockMode, error) {
	switch LockMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", LockModeStrict:
		return LockModeStrict, nil
	case LockModeLenient:
		return LockModeLenient, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidLockMode, s), "mode", s)
	}
}

// LockState is the lifecycle state of one configuration's lock artifact.
type LockState string

const (
	// LockStateAbsent means no artifact exists for the configuration.
	LockStateAbsent LockState = "absent"
	// LockStatePresent means an artifact was loaded.
	LockStatePresent LockState = "present"
	// LockStateUpdated means this build replaced the artifact.
	LockStateUpdated LockState = "updated"
)

var validConfigurationName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidateConfigurationName checks that a configuration name can name a lock artifact.
func ValidateConfigurationName(name string) error {
	if !validConfigurationName.MatchString(name) {
		return zerr.With(zerr.Wrap(ErrInvalidConfigurationName, name), "configuration", name)
	}
	return nil
}

// ConfigurationSettings controls locking for one configuration.
type ConfigurationSettings struct {
	Enabled bool
	Mode    LockMode
}

// LockingSettings is the project-wide locking configuration read from pin.yaml.
type LockingSettings struct {
	// Root is the directory containing pin.yaml.
	Root string
	// LocksDir is the directory holding lock artifacts, relative to Root.
	LocksDir string
	// Enabled turns locking off for every configuration when false.
	Enabled bool
	// Mode is the default enforcement mode.
	Mode LockMode
	// Configurations lists the configurations that have been declared.
	Configurations map[string]ConfigurationSettings
}

// For returns the effective settings of a configuration.
// Undeclared configurations do not participate in locking.
func (s *LockingSettings) For(name string) ConfigurationSettings {
	if s == nil || !s.Enabled {
		return ConfigurationSettings{Enabled: false, Mode: LockModeStrict}
	}
	cs, ok := s.Configurations[name]
	if !ok {
		return ConfigurationSettings{Enabled: false, Mode: s.Mode}
	}
	if cs.Mode == "" {
		cs.Mode = s.Mode
	}
	return cs
}

// LocksPath returns the absolute directory holding lock artifacts.
func (s *LockingSettings) LocksPath() string {
	dir := s.LocksDir
	if dir == "" {
		dir = DefaultLocksDirName
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(s.Root, dir)
}

// Declared returns the sorted names of every configuration listed in the settings.
func (s *LockingSettings) Declared() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.Configurations))
}
