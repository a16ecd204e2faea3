package secrets

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/sala/internal/gpg"
)

// TempSuffix is appended to a secret's path while it is being written.
const TempSuffix = ".tmp"

// WriteSecret encrypts plaintext under passphrase and atomically replaces
// finalPath with the result. On failure the temporary file is removed and
// finalPath is left as it was.
func WriteSecret(tool gpg.Tool, plaintext, passphrase []byte, cipher, finalPath string) (err error) {
	tempPath := finalPath + TempSuffix

	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tempPath, err)
	}

	committed := false
	defer func() {
		if !committed {
			file.Close()
			if removeErr := os.Remove(tempPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				err = errors.Join(err, fmt.Errorf("removing %s: %w", tempPath, removeErr))
			}
		}
	}()

	if err := tool.Encrypt(plaintext, passphrase, cipher, file); err != nil {
		return err
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tempPath, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", tempPath, finalPath, err)
	}

	committed = true
	return nil
}
