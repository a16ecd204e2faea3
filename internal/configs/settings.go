package configs

import (
	"os"
	"path/filepath"
)

const (
	// ControlDirName is the repository's hidden control directory.
	ControlDirName = ".sala"

	// KeyFileName is the encrypted master key inside the control directory.
	KeyFileName = "key"

	// RepoConfigFileName is the repository-local configuration file.
	RepoConfigFileName = "config"

	// DirectoryEnvVar names the repository when no directory is given. Hooks
	// receive it set to the repository's absolute path.
	DirectoryEnvVar = "SALADIR"
)

type UserSettings struct {
	// HomeConfigPath is ~/.sala.toml, empty when there is no home directory.
	HomeConfigPath string

	// UserConfigPath is <user config dir>/sala.toml.
	UserConfigPath string

	// UserHooksPath is the global hook directory, <user config dir>/sala.
	UserHooksPath string
}

var UserSalaSettings *UserSettings

func init() {
	UserSalaSettings = DefaultUserSettings()
}

// DefaultUserSettings derives the per-user paths from the environment.
// Paths that cannot be determined are left empty and skipped by Load.
func DefaultUserSettings() *UserSettings {
	settings := &UserSettings{}

	if homeDir, err := os.UserHomeDir(); err == nil {
		settings.HomeConfigPath = filepath.Join(homeDir, ".sala.toml")
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		settings.UserConfigPath = filepath.Join(configDir, "sala.toml")
		settings.UserHooksPath = filepath.Join(configDir, "sala")
	}

	return settings
}

// ControlDir returns <repoPath>/.sala.
func ControlDir(repoPath string) string {
	return filepath.Join(repoPath, ControlDirName)
}

// KeyPath returns <repoPath>/.sala/key.
func KeyPath(repoPath string) string {
	return filepath.Join(repoPath, ControlDirName, KeyFileName)
}

// RepoConfigPath returns <repoPath>/.sala/config.
func RepoConfigPath(repoPath string) string {
	return filepath.Join(repoPath, ControlDirName, RepoConfigFileName)
}
