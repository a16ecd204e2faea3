// Package hooks runs the user's post-get and post-set scripts.
//
// Hooks are executables named after the event, looked up in the
// repository's .sala directory and then in the user's global hook
// directory. Each one found is run with the repository root as working
// directory. A missing or non-executable hook is skipped silently; a hook
// that fails produces a warning and never fails the triggering operation.
package hooks

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/PolarWolf314/sala/internal/configs"
)

// Event identifies a hook.
type Event string

const (
	PostGet Event = "post-get"
	PostSet Event = "post-set"
)

// Runner runs hooks for one repository.
type Runner struct {
	RepoPath string

	// Dirs are searched in order; every matching hook runs.
	Dirs []string

	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner searching <repo>/.sala and the user's global
// hook directory.
func NewRunner(repoPath string) *Runner {
	dirs := []string{configs.ControlDir(repoPath)}
	if userDir := configs.UserSalaSettings.UserHooksPath; userDir != "" {
		dirs = append(dirs, userDir)
	}
	return &Runner{
		RepoPath: repoPath,
		Dirs:     dirs,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// PostGet runs post-get hooks with the secret's path and value.
func (r *Runner) PostGet(path string, secret []byte) []string {
	return r.run(PostGet, path, string(secret))
}

// PostSet runs post-set hooks with the secret's path.
func (r *Runner) PostSet(path string) []string {
	return r.run(PostSet, path)
}

func (r *Runner) run(event Event, args ...string) []string {
	var warnings []string
	for _, dir := range r.Dirs {
		if warning := r.runOne(filepath.Join(dir, string(event)), args); warning != "" {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}

func (r *Runner) runOne(hookPath string, args []string) string {
	if abs, err := filepath.Abs(hookPath); err == nil {
		hookPath = abs
	}

	cmd := exec.Command(hookPath, args...)
	cmd.Dir = r.RepoPath
	cmd.Env = append(os.Environ(), configs.DirectoryEnvVar+"="+r.absRepoPath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		// Not found or not executable.
		return ""
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return warning(hookPath, exitErr.ProcessState)
	}
	if err != nil {
		return fmt.Sprintf("Hook %q failed: %v", hookPath, err)
	}
	return ""
}

func (r *Runner) absRepoPath() string {
	if abs, err := filepath.Abs(r.RepoPath); err == nil {
		return abs
	}
	return r.RepoPath
}

func warning(hookPath string, state *os.ProcessState) string {
	status := fmt.Sprintf("%d", state.ExitCode())
	if !state.Exited() {
		status = "(signaled)"
	}
	return fmt.Sprintf("Hook %q failed with status %s", hookPath, status)
}
