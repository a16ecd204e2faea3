package workflows

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/sala/internal/configs"
	logger "github.com/PolarWolf314/sala/internal/logging"
	"github.com/PolarWolf314/sala/internal/prompt"
	"github.com/PolarWolf314/sala/internal/secrets"
)

const initMessage = `Please pick a master passphrase. It is used to encrypt a very long
random key, which in turn is used to encrypt all the private data in
this directory.

Make sure you remember the master passphrase and that it's strong
enough for your privacy needs.
`

// InitOptions configures the init workflow.
type InitOptions struct {
	// Repo is the repository to create.
	Repo *secrets.Repository

	// Config supplies the cipher and key length.
	Config *configs.Config

	// Prompter reads the master passphrase and its confirmation.
	Prompter prompt.Prompter

	// Out receives the introduction and progress text. Nil discards it.
	Out io.Writer

	// Progress, when set, is called with a description right before the
	// master key is generated. The returned function is called with the
	// outcome once the key has been written (or failed to be).
	Progress func(message string) func(success bool)

	Logger logger.Logger
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// KeyPath is the encrypted master key.
	KeyPath string

	// KeyBits is the size of the generated master key.
	KeyBits int

	// Warnings are non-fatal problems, such as failing to write sample hooks.
	Warnings []string
}

// Init creates a repository: the .sala directory and a master key encrypted
// under a passphrase entered twice.
//
// Returns ErrAlreadyInitialized if the key or the .sala directory already
// exists, ErrCannotInitRepository if .sala cannot be created, and
// ErrInputsDidNotMatch if the passphrase and its confirmation differ. On any
// failure after .sala was created, it is removed again.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	if err := opts.Repo.CheckUninitialized(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := opts.Repo.CreateControlDir(); err != nil {
		return nil, err
	}
	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			opts.Logger.Debugf("Removing %s after failed init", opts.Repo.ControlDir())
			os.RemoveAll(opts.Repo.ControlDir())
		}
	}()

	fmt.Fprint(out, initMessage+"\n")

	passphrase, err := prompt.Confirmed(opts.Prompter, "Enter a master passphrase: ", "Confirm: ")
	if err != nil {
		return nil, err
	}
	defer clear(passphrase)

	bits := opts.Config.KeyLength * 8
	fmt.Fprintln(out)
	done := opts.progress(out, fmt.Sprintf("Generating a master key (%d bits)...", bits))

	err = opts.Repo.CreateMasterKey(passphrase, opts.Config.Cipher, opts.Config.KeyLength)
	done(err == nil)
	if err != nil {
		return nil, err
	}

	result := &InitResult{KeyPath: opts.Repo.KeyPath(), KeyBits: bits}
	if err := opts.Repo.WriteSampleHooks(); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}

	cleanupNeeded = false
	opts.Logger.Infof("Initialized repository at %s", opts.Repo.Root)

	return result, nil
}

func (o InitOptions) progress(out io.Writer, message string) func(bool) {
	if o.Progress != nil {
		return o.Progress(message)
	}
	fmt.Fprint(out, message)
	return func(success bool) {
		if success {
			fmt.Fprintln(out, " done")
		} else {
			fmt.Fprintln(out, " failed")
		}
	}
}
