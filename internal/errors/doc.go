// Package errors provides typed error values for sala.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Repository errors: lifecycle of the .sala directory (ErrAlreadyInitialized,
//     ErrNoRepository, ErrCannotInitRepository, ErrUnlockFailed)
//   - Input errors: interactive entry problems (ErrInputsDidNotMatch)
//   - Path errors: secret locations that cannot be used (ErrFileDoesNotExist,
//     ErrTargetIsDirectory, ErrCannotCreateDirectory, ErrCannotChangeDirectory)
//   - Configuration errors: unreadable or invalid TOML files (ErrConfigParse)
//   - CLI errors: ErrUsage
//
// Path errors carry the offending path in a *PathError, which still matches
// its sentinel:
//
//	err := errors.NewPathError(errors.ErrTargetIsDirectory, "foo")
//	stderrors.Is(err, errors.ErrTargetIsDirectory) // true
//
// Only the CLI layer turns these into user-facing messages and exit codes.
package errors
