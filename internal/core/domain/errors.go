package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedLockArtifact is returned when a persisted lock exists but cannot be parsed.
	ErrMalformedLockArtifact = zerr.New("malformed lock artifact")

	// ErrDuplicateCoordinate is returned when a lock would contain two entries for one module coordinate.
	ErrDuplicateCoordinate = zerr.New("duplicate module coordinate")

	// ErrLockedModuleMissing is returned when a locked module no longer appears in the resolved graph.
	ErrLockedModuleMissing = zerr.New("locked module missing from resolution")

	// ErrUnlockedModuleResolved is returned in strict mode when a resolved module has no lock entry.
	ErrUnlockedModuleResolved = zerr.New("resolved module is not locked")

	// ErrLockedVersionMismatch is returned when a module resolved to a version other than the locked one.
	ErrLockedVersionMismatch = zerr.New("resolved version does not match locked version")

	// ErrLockDrift is the aggregate error for all drift found while reconciling one configuration.
	ErrLockDrift = zerr.New("dependency lock drift detected")

	// ErrInvalidCoordinate is returned when a module coordinate is not of the form group:module.
	ErrInvalidCoordinate = zerr.New("invalid module coordinate, expected format: group:module")

	// ErrInvalidVersion is returned when a version is empty or contains reserved characters.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidResolvedModule is returned when a resolved module is not of the form group:module:version.
	ErrInvalidResolvedModule = zerr.New("invalid resolved module, expected format: group:module:version")

	// ErrInvalidConfigurationName is returned when a configuration name cannot name a lock artifact.
	ErrInvalidConfigurationName = zerr.New("configuration name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrInvalidLockMode is returned when an enforcement mode is neither strict nor lenient.
	ErrInvalidLockMode = zerr.New("invalid lock mode, expected 'strict' or 'lenient'")

	// ErrInvalidUpdateSelector is returned when an update selector is not group:module or group:*.
	ErrInvalidUpdateSelector = zerr.New("invalid update selector, expected group:module or group:*")

	// ErrLockReadFailed is returned when a lock artifact cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock artifact")

	// ErrLockWriteFailed is returned when a lock artifact cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock artifact")

	// ErrLockDirCreateFailed is returned when the lock directory cannot be created.
	ErrLockDirCreateFailed = zerr.New("failed to create lock directory")

	// ErrLockListFailed is returned when the lock directory cannot be listed.
	ErrLockListFailed = zerr.New("failed to list lock artifacts")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no pin.yaml is found in the working directory or its parents.
	ErrConfigNotFound = zerr.New("could not find pin.yaml")

	// ErrSnapshotReadFailed is returned when a resolution snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read resolution snapshot")

	// ErrSnapshotParseFailed is returned when a resolution snapshot cannot be parsed.
	ErrSnapshotParseFailed = zerr.New("failed to parse resolution snapshot")

	// ErrConfigurationNotInSnapshot is returned when a requested configuration has no resolved modules.
	ErrConfigurationNotInSnapshot = zerr.New("configuration not present in resolution snapshot")

	// ErrLockingFailed is returned by the CLI when one or more configurations could not be locked.
	ErrLockingFailed = zerr.New("dependency locking failed")

	// ErrCheckFailed is returned by the CLI when a check found drift that violates a lock.
	ErrCheckFailed = zerr.New("dependency lock check failed")
)
