package domain

const (
	// ConfigFileName is the name of the project locking configuration file.
	ConfigFileName = "pin.yaml"

	// DefaultLocksDirName is the default directory holding lock artifacts.
	DefaultLocksDirName = "dependency-locks"

	// LockfileExt is the extension of a lock artifact; the base name is the configuration name.
	LockfileExt = ".lockfile"

	// DefaultSnapshotFileName is the default resolution snapshot written by the resolver.
	DefaultSnapshotFileName = "resolved.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for lock artifacts (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
