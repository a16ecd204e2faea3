package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
)

const samplePostSetHook = `#!/bin/sh

# This is a sample post-set hook for sala that commits your changes
# to git. To activate, rename it to post-set and make it executable.

# post-set receives the secret's path as its only argument and runs in
# the repository root.

# git add -- "$1" && git commit -m "Save $1."
`

// CheckUninitialized fails with ErrAlreadyInitialized if the master key or
// the control directory exists. A control directory without a key is
// treated as initialized so that a half-created repository is never
// overwritten.
func (r *Repository) CheckUninitialized() error {
	if _, err := os.Lstat(r.KeyPath()); err == nil {
		return kerrors.ErrAlreadyInitialized
	}
	if _, err := os.Lstat(r.ControlDir()); err == nil {
		return kerrors.ErrAlreadyInitialized
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", kerrors.ErrCannotInitRepository, err)
	}
	return nil
}

// CreateControlDir creates the .sala directory and any missing parents.
func (r *Repository) CreateControlDir() error {
	if err := os.MkdirAll(r.ControlDir(), 0700); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrCannotInitRepository, err)
	}
	return nil
}

// GenerateKey returns length random bytes as lowercase hex text.
func GenerateKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid key length %d", length)
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generating master key: %w", err)
	}
	encoded := make([]byte, hex.EncodedLen(length))
	hex.Encode(encoded, raw)
	clear(raw)
	return encoded, nil
}

// CreateMasterKey generates a key of keyLength bytes and writes it,
// encrypted under passphrase, to the key file.
func (r *Repository) CreateMasterKey(passphrase []byte, cipher string, keyLength int) error {
	key, err := GenerateKey(keyLength)
	if err != nil {
		return err
	}
	defer clear(key)

	if err := WriteSecret(r.Tool, key, passphrase, cipher, r.KeyPath()); err != nil {
		return fmt.Errorf("writing master key: %w", err)
	}
	return nil
}

// WriteSampleHooks installs non-executable hook templates in the control
// directory.
func (r *Repository) WriteSampleHooks() error {
	path := filepath.Join(r.ControlDir(), "post-set.sample")
	// #nosec G306 -- sample hooks are templates and contain no secrets
	if err := os.WriteFile(path, []byte(samplePostSetHook), 0644); err != nil {
		return fmt.Errorf("writing sample hook: %w", err)
	}
	return nil
}
