package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
)

const (
	DefaultCipher            = "AES256"
	DefaultKeyLength         = 64
	DefaultPasswordGenerator = "pwgen -nc 12 10"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	// Cipher is passed to the encryption tool as the symmetric cipher suite.
	Cipher string

	// KeyLength is the number of random bytes in a new master key.
	KeyLength int

	// PasswordGenerator is a shell command line whose whitespace-separated
	// output is offered as suggestions by set. Empty disables suggestions.
	PasswordGenerator string
}

// Layer is one configuration file. Nil fields are not set by that file.
type Layer struct {
	Cipher            *string `toml:"cipher"`
	KeyLength         *int    `toml:"key-length"`
	PasswordGenerator *string `toml:"password-generator"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cipher:            DefaultCipher,
		KeyLength:         DefaultKeyLength,
		PasswordGenerator: DefaultPasswordGenerator,
	}
}

// Merge applies layers on top of base in order; later layers win per field.
func Merge(base Config, layers ...Layer) Config {
	result := base
	for _, layer := range layers {
		if layer.Cipher != nil {
			result.Cipher = *layer.Cipher
		}
		if layer.KeyLength != nil {
			result.KeyLength = *layer.KeyLength
		}
		if layer.PasswordGenerator != nil {
			result.PasswordGenerator = *layer.PasswordGenerator
		}
	}
	return result
}

// LoadLayer reads one configuration file. A missing file (or an empty path)
// is an empty layer.
func LoadLayer(path string) (Layer, error) {
	var layer Layer
	if path == "" {
		return layer, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return layer, nil
	}

	if err := LoadTOML(path, &layer); err != nil {
		return Layer{}, &kerrors.ConfigParseError{Path: path, Err: err}
	}

	if layer.KeyLength != nil && *layer.KeyLength <= 0 {
		return Layer{}, &kerrors.ConfigParseError{
			Path: path,
			Err:  fmt.Errorf("key-length must be positive, got %d", *layer.KeyLength),
		}
	}

	return layer, nil
}

// Load resolves the configuration for the repository at repoPath using the
// per-user paths in UserSalaSettings.
func Load(repoPath string) (*Config, error) {
	paths := []string{
		UserSalaSettings.HomeConfigPath,
		UserSalaSettings.UserConfigPath,
		RepoConfigPath(repoPath),
	}

	layers := make([]Layer, 0, len(paths))
	for _, path := range paths {
		layer, err := LoadLayer(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}

	config := Merge(Default(), layers...)
	return &config, nil
}
