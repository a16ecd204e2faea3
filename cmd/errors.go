package cmd

import (
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
	"github.com/PolarWolf314/sala/internal/ui"
)

// ErrorMessage turns an error returned by Execute into the text shown to the
// user.
func ErrorMessage(err error) string {
	label := ui.Error.Sprint("Error:")

	var pathErr *kerrors.PathError
	if errors.As(err, &pathErr) {
		switch {
		case errors.Is(err, kerrors.ErrFileDoesNotExist):
			return fmt.Sprintf("%s File does not exist or invalid: %s", label, pathErr.Path)
		case errors.Is(err, kerrors.ErrTargetIsDirectory):
			return fmt.Sprintf("%s Target is a directory: %s", label, pathErr.Path)
		case errors.Is(err, kerrors.ErrCannotCreateDirectory):
			return fmt.Sprintf("%s Cannot create directory: %s", label, pathErr.Path)
		case errors.Is(err, kerrors.ErrCannotChangeDirectory):
			return fmt.Sprintf("%s Cannot change to directory: %s", label, pathErr.Path)
		}
	}

	var configErr *kerrors.ConfigParseError
	if errors.As(err, &configErr) {
		return fmt.Sprintf("%s Invalid configuration file %s: %v", label, ui.Path.Sprint(configErr.Path), configErr.Err)
	}

	switch {
	case errors.Is(err, kerrors.ErrAlreadyInitialized):
		return label + " The master key already exists"
	case errors.Is(err, kerrors.ErrNoRepository):
		return "Run " + ui.Code.Sprint("sala init") + " first"
	case errors.Is(err, kerrors.ErrCannotInitRepository):
		return label + " Failed to initialize a new repository"
	case errors.Is(err, kerrors.ErrUnlockFailed):
		return "\n" + label + " Unable to unlock the encryption key"
	case errors.Is(err, kerrors.ErrInputsDidNotMatch):
		return "\nInputs did not match."
	case errors.Is(err, kerrors.ErrUsage):
		hint := "Try " + ui.Code.Sprint("sala --help")
		if err == kerrors.ErrUsage {
			return hint
		}
		detail := strings.TrimPrefix(err.Error(), kerrors.ErrUsage.Error()+": ")
		return fmt.Sprintf("%s %s\n%s", label, detail, hint)
	}

	return fmt.Sprintf("%s %v", label, err)
}
