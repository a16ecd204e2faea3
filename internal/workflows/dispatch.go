package workflows

import (
	"context"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
	"github.com/PolarWolf314/sala/internal/secrets"
)

// GetOrSet reads the secrets if the first path exists and writes them
// otherwise. This is what a bare path on the command line does.
//
// The existence check and the operation are not atomic: if another process
// creates or removes the path in between, the chosen branch may fail.
func GetOrSet(ctx context.Context, opts AccessOptions) (*AccessResult, error) {
	if len(opts.Paths) == 0 {
		return nil, kerrors.ErrUsage
	}

	kind, err := opts.Repo.Stat(opts.Paths[0])
	if err == nil && kind != secrets.Missing {
		opts.Logger.Debugf("%s exists, reading", opts.Paths[0])
		return Get(ctx, opts)
	}

	opts.Logger.Debugf("%s does not exist, writing", opts.Paths[0])
	return Set(ctx, opts)
}
