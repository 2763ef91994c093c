// Package constants provides shared constants used throughout the gtfsmerge codebase.
// This includes file permissions, file name conventions, and key construction
// values that must stay consistent between the merge engine and its collaborators.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Feed layout constants
const (
	// ArchiveExtension is the extension of feed archives in an archive root.
	// Matching is case-insensitive.
	ArchiveExtension = ".zip"

	// TempDirPrefix prefixes the ephemeral directories archives are expanded into
	TempDirPrefix = "gtfsmerge-"
)

// Merge key constants
const (
	// KeySeparator is appended after every component of a composite merge key
	KeySeparator = "_"
)

// Configuration constants
const (
	// ConfigName is the base name of the optional configuration file
	ConfigName = ".gtfsmerge"

	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "GTFSMERGE"
)
