// Package generator runs the configured password-generator command and
// turns its output into suggestions for set.
package generator

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// Suggest splits command with POSIX shell-word rules, runs it and returns
// its whitespace-separated output. An empty command yields no suggestions.
//
// A generator that cannot be parsed, started or that prints nothing is not
// fatal to set: the caller falls back to asking for a value, so the error is
// only for logging.
func Suggest(command string) ([]string, error) {
	if strings.TrimSpace(command) == "" {
		return nil, nil
	}

	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parsing password generator %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, nil
	}

	output, err := exec.Command(argv[0], argv[1:]...).Output()
	if err != nil {
		return nil, fmt.Errorf("running password generator %q: %w", argv[0], err)
	}

	return strings.Fields(string(output)), nil
}
