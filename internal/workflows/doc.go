// Package workflows provides high-level orchestration for sala commands.
//
// Workflows coordinate the secrets, prompt, generator and hooks packages to
// implement complete user-facing operations, independent of CLI concerns
// like flag parsing and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Resolves the repository directory and loads configuration
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Validating paths before anything is unlocked or written
//   - Unlocking the repository (once per invocation)
//   - Prompting for new values and generator suggestions
//   - Running post-get and post-set hooks
//
// # Available Workflows
//
//   - Init: creates the .sala directory and the encrypted master key
//   - Get: decrypts one or more secrets
//   - Set: creates or replaces one or more secrets
//   - GetOrSet: Get if the first path exists, Set otherwise
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() or errors.As() to check for specific conditions:
//
//	result, err := workflows.Get(ctx, opts)
//	var pathErr *kerrors.PathError
//	if errors.As(err, &pathErr) {
//	    // pathErr.Path names the offending secret
//	}
//
// Hook failures are not errors; they are returned as warnings on the result.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It is checked before any prompt or subprocess is started; once gpg is
// running the operation is not interruptible.
package workflows
