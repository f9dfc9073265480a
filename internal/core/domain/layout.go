package domain

import "path/filepath"

const (
	// DirName is the name of the per-project metadata directory.
	DirName = ".fingerprint"

	// LocalStoreFileName is the name of the local tier store inside DirName.
	LocalStoreFileName = "local.json"

	// GlobalStoreFileName is the name of the global tier database.
	GlobalStoreFileName = "global.db"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "fingerprint.yaml"

	// ConfigEnvVar overrides the configuration file path.
	ConfigEnvVar = "FINGERPRINT_CONFIG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLocalStorePath returns the default path of the local tier store.
// It joins .fingerprint and local.json.
func DefaultLocalStorePath() string {
	return filepath.Join(DirName, LocalStoreFileName)
}

// DefaultGlobalStorePath returns the default path of the global tier database
// below the given user cache directory.
func DefaultGlobalStorePath(userCacheDir string) string {
	return filepath.Join(userCacheDir, "fingerprint", GlobalStoreFileName)
}
