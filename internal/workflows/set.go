package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
	"github.com/PolarWolf314/sala/internal/generator"
	"github.com/PolarWolf314/sala/internal/prompt"
	"github.com/PolarWolf314/sala/internal/secrets"
)

const confirmPrompt = "Confirm: "

// Set creates or replaces the secrets at opts.Paths.
//
// Missing parent directories are created first; a parent that cannot be
// created fails with a *PathError of kind ErrCannotCreateDirectory naming
// that parent. A path that is an existing directory fails with
// ErrTargetIsDirectory. Both checks happen for every path before the
// repository is unlocked.
//
// For each path the user either picks one of the password generator's
// suggestions by number or types a new value twice. Values are written
// atomically with the configured cipher.
func Set(ctx context.Context, opts AccessOptions) (*AccessResult, error) {
	if len(opts.Paths) == 0 {
		return nil, kerrors.ErrUsage
	}

	// Every target is checked before any directory is created.
	for _, path := range opts.Paths {
		if err := checkTarget(opts.Repo, path); err != nil {
			return nil, err
		}
	}
	for _, path := range opts.Paths {
		if err := createParents(opts.Repo, path); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlocked, err := opts.Repo.Unlock(opts.Prompter)
	if err != nil {
		return nil, err
	}
	defer unlocked.Lock()

	result := &AccessResult{Action: ActionSet, Raw: opts.Raw}
	for _, path := range opts.Paths {
		value, err := readNewSecret(opts, path)
		if err != nil {
			return nil, err
		}

		err = unlocked.Write(path, value, opts.Config.Cipher)
		clear(value)
		if err != nil {
			return nil, fmt.Errorf("writing secret: %w", err)
		}
		opts.Logger.Infof("Stored %s", path)
		result.Written = append(result.Written, path)

		if opts.Hooks != nil {
			result.Warnings = append(result.Warnings, opts.Hooks.PostSet(path)...)
		}
	}

	return result, nil
}

// checkTarget rejects a path that is an existing directory.
func checkTarget(repo *secrets.Repository, path string) error {
	kind, err := repo.Stat(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if kind == secrets.Directory {
		return kerrors.NewPathError(kerrors.ErrTargetIsDirectory, path)
	}
	return nil
}

// createParents creates the missing parent directories of path.
func createParents(repo *secrets.Repository, path string) error {
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(repo.Path(parent), 0700); err != nil {
			return kerrors.NewPathError(kerrors.ErrCannotCreateDirectory, parent)
		}
	}
	return nil
}

func readNewSecret(opts AccessOptions, path string) ([]byte, error) {
	suggestions, err := generator.Suggest(opts.Config.PasswordGenerator)
	if err != nil {
		opts.Logger.Debugf("No suggestions: %v", err)
	}

	if len(suggestions) > 0 {
		return prompt.Choice(opts.Prompter, opts.out(),
			fmt.Sprintf("Select a number from the list or type a new secret for %s: ", path),
			confirmPrompt, suggestions)
	}

	return prompt.Confirmed(opts.Prompter,
		fmt.Sprintf("Type a new secret for %s: ", path),
		confirmPrompt)
}
