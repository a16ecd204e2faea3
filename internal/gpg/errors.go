package gpg

import (
	"fmt"
	"os"
	"strings"
)

// OperationFailedError reports that the encryption tool ran but did not
// succeed. Stderr holds its diagnostic output.
type OperationFailedError struct {
	Op       string
	Stderr   string
	ExitCode int
	Signaled bool
}

func newOperationFailedError(op string, state *os.ProcessState, stderr string) *OperationFailedError {
	err := &OperationFailedError{Op: op, Stderr: stderr, ExitCode: -1}
	if state != nil {
		err.ExitCode = state.ExitCode()
		err.Signaled = !state.Exited()
	}
	return err
}

func (e *OperationFailedError) Error() string {
	status := fmt.Sprintf("status %d", e.ExitCode)
	if e.Signaled {
		status = "(signaled)"
	}

	msg := fmt.Sprintf("gpg %s failed with %s", e.Op, status)
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg += ": " + detail
	}
	return msg
}
