// Package configs resolves sala's configuration.
//
// Configuration is TOML and is read from up to three files, in increasing
// order of precedence:
//
//   - ~/.sala.toml
//   - <user config dir>/sala.toml (e.g. $XDG_CONFIG_HOME/sala.toml)
//   - <repository>/.sala/config
//
// Recognized keys:
//
//	cipher = "AES256"                       # gpg --cipher-algo value
//	key-length = 64                         # master key size in bytes
//	password-generator = "pwgen -nc 12 10"  # empty string disables suggestions
//
// Each file is a partial layer: a key set in a later file overrides the same
// key from an earlier file, and absent keys fall through. A missing file is
// an empty layer. A file that exists but cannot be read, is not valid TOML,
// contains unknown keys or has a non-positive key-length makes Load fail
// with a *errors.ConfigParseError naming that file.
//
// Load is computed once per invocation and the resulting *Config is passed
// explicitly to whatever needs it.
//
// # Settings
//
// UserSalaSettings holds the per-user file locations (configuration layers
// and the global hook directory). It is initialized at startup and tests
// replace it to point into temporary directories.
package configs
