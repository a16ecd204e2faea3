package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/PolarWolf314/sala/internal/configs"
	kerrors "github.com/PolarWolf314/sala/internal/errors"
	"github.com/PolarWolf314/sala/internal/gpg"
	logger "github.com/PolarWolf314/sala/internal/logging"
	"github.com/PolarWolf314/sala/internal/prompt"
)

const unlockPrompt = "Enter the master passphrase: "

// Repository is a directory of encrypted secrets.
type Repository struct {
	Root string
	Tool gpg.Tool

	Logger logger.Logger
}

// Open returns the repository rooted at root.
func Open(root string, tool gpg.Tool, log logger.Logger) *Repository {
	return &Repository{Root: root, Tool: tool, Logger: log}
}

// KeyPath is the encrypted master key.
func (r *Repository) KeyPath() string {
	return configs.KeyPath(r.Root)
}

// ControlDir is the .sala directory.
func (r *Repository) ControlDir() string {
	return configs.ControlDir(r.Root)
}

// Path resolves a secret path relative to the repository root.
func (r *Repository) Path(relPath string) string {
	return filepath.Join(r.Root, relPath)
}

// HasKey reports whether the master key file exists and is a regular file.
func (r *Repository) HasKey() bool {
	info, err := os.Stat(r.KeyPath())
	return err == nil && info.Mode().IsRegular()
}

// Unlock asks for the master passphrase and decrypts the master key. There
// is no retry: any failure to decrypt is ErrUnlockFailed.
func (r *Repository) Unlock(p prompt.Prompter) (*Unlocked, error) {
	if !r.HasKey() {
		return nil, kerrors.ErrNoRepository
	}

	passphrase, err := p.Prompt(unlockPrompt)
	if err != nil {
		r.Logger.Debugf("Reading master passphrase: %v", err)
		return nil, kerrors.ErrUnlockFailed
	}

	key, err := r.Tool.Decrypt(r.KeyPath(), passphrase)
	clear(passphrase)
	if err != nil {
		r.Logger.Debugf("Decrypting master key: %v", err)
		return nil, kerrors.ErrUnlockFailed
	}

	r.Logger.Infof("Unlocked master key at %s", r.KeyPath())
	return &Unlocked{repo: r, key: key}, nil
}

// Unlocked is a repository whose master key is held in memory.
type Unlocked struct {
	repo *Repository
	key  []byte
}

// Repository returns the underlying repository.
func (u *Unlocked) Repository() *Repository {
	return u.repo
}

// Read decrypts the secret at relPath.
func (u *Unlocked) Read(relPath string) ([]byte, error) {
	if u.key == nil {
		return nil, kerrors.ErrUnlockFailed
	}
	plaintext, err := u.repo.Tool.Decrypt(u.repo.Path(relPath), u.key)
	if err != nil {
		return nil, fmt.Errorf("decrypting %s: %w", relPath, err)
	}
	return plaintext, nil
}

// Write encrypts value into the secret at relPath using cipher.
func (u *Unlocked) Write(relPath string, value []byte, cipher string) error {
	if u.key == nil {
		return kerrors.ErrUnlockFailed
	}
	if err := WriteSecret(u.repo.Tool, value, u.key, cipher, u.repo.Path(relPath)); err != nil {
		return fmt.Errorf("encrypting %s: %w", relPath, err)
	}
	return nil
}

// Lock wipes the master key from memory. The Unlocked value cannot be used
// afterwards.
func (u *Unlocked) Lock() {
	clear(u.key)
	u.key = nil
}

// Kind classifies what currently exists at a secret path.
type Kind int

const (
	Missing Kind = iota
	RegularFile
	Directory
	Other
)

// Stat classifies the secret path relPath.
func (r *Repository) Stat(relPath string) (Kind, error) {
	info, err := os.Stat(r.Path(relPath))
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return Missing, nil
	case err != nil:
		return Missing, err
	case info.IsDir():
		return Directory, nil
	case info.Mode().IsRegular():
		return RegularFile, nil
	default:
		return Other, nil
	}
}
