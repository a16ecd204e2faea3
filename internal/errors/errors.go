package errors

import (
	"errors"
	"fmt"
)

// Repository errors indicate problems with the repository's lifecycle.
var (
	// ErrAlreadyInitialized indicates the master key or the .sala directory already exists.
	ErrAlreadyInitialized = errors.New("the master key already exists")

	// ErrNoRepository indicates there is no master key to unlock.
	ErrNoRepository = errors.New("repository has not been initialized")

	// ErrCannotInitRepository indicates the .sala directory could not be created.
	ErrCannotInitRepository = errors.New("failed to initialize a new repository")

	// ErrUnlockFailed indicates the master key could not be decrypted.
	ErrUnlockFailed = errors.New("unable to unlock the encryption key")
)

// Input errors indicate problems with interactively entered values.
var (
	// ErrInputsDidNotMatch indicates a value and its confirmation differ.
	ErrInputsDidNotMatch = errors.New("inputs did not match")
)

// Path errors indicate a secret path that cannot be used. They are normally
// returned wrapped in a *PathError.
var (
	// ErrFileDoesNotExist indicates the path is not an existing regular file.
	ErrFileDoesNotExist = errors.New("file does not exist or invalid")

	// ErrTargetIsDirectory indicates a secret would overwrite a directory.
	ErrTargetIsDirectory = errors.New("target is a directory")

	// ErrCannotCreateDirectory indicates a parent directory could not be created.
	ErrCannotCreateDirectory = errors.New("cannot create directory")

	// ErrCannotChangeDirectory indicates the repository directory is unusable.
	ErrCannotChangeDirectory = errors.New("cannot change to directory")
)

// Configuration and CLI errors.
var (
	// ErrConfigParse indicates a configuration file exists but is invalid.
	ErrConfigParse = errors.New("invalid configuration file")

	// ErrUsage indicates the command line could not be interpreted.
	ErrUsage = errors.New("invalid usage")
)

// PathError records a path-related failure together with the path, relative
// to the repository root, that caused it.
type PathError struct {
	Kind error
	Path string
}

// NewPathError returns a *PathError of the given kind.
func NewPathError(kind error, path string) *PathError {
	return &PathError{Kind: kind, Path: path}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Kind
}

// ConfigParseError reports a configuration file that could not be decoded.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrConfigParse, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the decoder's error.
func (e *ConfigParseError) Unwrap() []error {
	return []error{ErrConfigParse, e.Err}
}
