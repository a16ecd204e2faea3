package workflows

import (
	"io"

	"github.com/PolarWolf314/sala/internal/configs"
	logger "github.com/PolarWolf314/sala/internal/logging"
	"github.com/PolarWolf314/sala/internal/prompt"
	"github.com/PolarWolf314/sala/internal/secrets"
)

// HookRunner runs post-operation hooks and returns warnings for failures.
type HookRunner interface {
	PostGet(path string, secret []byte) []string
	PostSet(path string) []string
}

// AccessOptions configures Get, Set and GetOrSet.
type AccessOptions struct {
	// Repo is the repository to operate on.
	Repo *secrets.Repository

	// Config is the resolved configuration.
	Config *configs.Config

	// Paths are secret paths relative to the repository root.
	Paths []string

	// Raw requests machine-friendly output. It is passed through to the result.
	Raw bool

	// Prompter reads the master passphrase and new values.
	Prompter prompt.Prompter

	// Out receives generator suggestion lists. Nil discards them.
	Out io.Writer

	// Hooks runs post-get and post-set hooks. Nil disables hooks.
	Hooks HookRunner

	Logger logger.Logger
}

// Action tells which operation an access workflow performed.
type Action string

const (
	ActionGet Action = "get"
	ActionSet Action = "set"
)

// Secret is one decrypted secret.
type Secret struct {
	Path  string
	Value []byte
}

// AccessResult contains the outcome of an access operation.
type AccessResult struct {
	// Action is the operation that was performed.
	Action Action

	// Secrets holds decrypted values, in path order, for ActionGet.
	Secrets []Secret

	// Written lists the paths stored by ActionSet.
	Written []string

	// Raw mirrors AccessOptions.Raw.
	Raw bool

	// Warnings are hook failures. They never affect the outcome.
	Warnings []string
}

func (o AccessOptions) out() io.Writer {
	if o.Out == nil {
		return io.Discard
	}
	return o.Out
}
