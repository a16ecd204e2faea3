package workflows

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
	"github.com/PolarWolf314/sala/internal/secrets"
)

// Get decrypts the secrets at opts.Paths.
//
// Every path must be an existing regular file; otherwise Get fails with a
// *PathError of kind ErrFileDoesNotExist before asking for the master
// passphrase. The repository is unlocked once for all paths.
//
// Returns ErrNoRepository or ErrUnlockFailed from unlocking. No plaintext is
// returned on any error.
func Get(ctx context.Context, opts AccessOptions) (*AccessResult, error) {
	if len(opts.Paths) == 0 {
		return nil, kerrors.ErrUsage
	}

	for _, path := range opts.Paths {
		kind, err := opts.Repo.Stat(path)
		if err != nil || kind != secrets.RegularFile {
			return nil, kerrors.NewPathError(kerrors.ErrFileDoesNotExist, path)
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

	result := &AccessResult{Action: ActionGet, Raw: opts.Raw}
	for _, path := range opts.Paths {
		value, err := unlocked.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading secret: %w", err)
		}
		result.Secrets = append(result.Secrets, Secret{Path: path, Value: value})
	}

	if opts.Hooks != nil {
		for _, secret := range result.Secrets {
			result.Warnings = append(result.Warnings, opts.Hooks.PostGet(secret.Path, secret.Value)...)
		}
	}

	return result, nil
}
