package hooks

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/sala/internal/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// writeHook writes a hook script with the given mode.
func writeHook(t *testing.T, dir string, event Event, body string, mode os.FileMode) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0700))
	path := filepath.Join(dir, string(event))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode))
	return path
}

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	repo := t.TempDir()
	var stdout bytes.Buffer
	return &Runner{
		RepoPath: repo,
		Dirs:     []string{configs.ControlDir(repo), filepath.Join(t.TempDir(), "global")},
		Stdout:   &stdout,
		Stderr:   &stdout,
	}, &stdout
}

func TestMissingHooksAreSilent(t *testing.T) {
	runner, stdout := newTestRunner(t)

	assert.Empty(t, runner.PostGet("foo", []byte("bar")))
	assert.Empty(t, runner.PostSet("foo"))
	assert.Empty(t, stdout.String())
}

func TestNonExecutableHookIsSkipped(t *testing.T) {
	requireShell(t)
	runner, stdout := newTestRunner(t)
	writeHook(t, runner.Dirs[0], PostSet, "echo ran\n", 0600)

	assert.Empty(t, runner.PostSet("foo"))
	assert.Empty(t, stdout.String())
}

func TestHooksReceiveArgumentsInRepoDir(t *testing.T) {
	requireShell(t)
	runner, stdout := newTestRunner(t)
	writeHook(t, runner.Dirs[0], PostGet, `echo "repo:$(pwd -P) $1=$2 dir:$SALADIR"`+"\n", 0700)
	writeHook(t, runner.Dirs[1], PostGet, `echo "global $#"`+"\n", 0700)

	warnings := runner.PostGet("foo/@bar", []byte("baz"))
	assert.Empty(t, warnings)

	realRepo, err := filepath.EvalSymlinks(runner.RepoPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, fmt.Sprintf("repo:%s foo/@bar=baz dir:%s", realRepo, runner.RepoPath), lines[0])
	assert.Equal(t, "global 2", lines[1])
}

func TestFailingHookProducesWarning(t *testing.T) {
	requireShell(t)
	runner, _ := newTestRunner(t)
	hookPath := writeHook(t, runner.Dirs[0], PostSet, "exit 3\n", 0700)
	signaledPath := writeHook(t, runner.Dirs[1], PostSet, "kill -9 $$\n", 0700)

	warnings := runner.PostSet("foo")

	require.Len(t, warnings, 2)
	assert.Equal(t, fmt.Sprintf("Hook %q failed with status 3", hookPath), warnings[0])
	assert.Equal(t, fmt.Sprintf("Hook %q failed with status (signaled)", signaledPath), warnings[1])
}

func TestNewRunnerDirs(t *testing.T) {
	original := configs.UserSalaSettings
	t.Cleanup(func() { configs.UserSalaSettings = original })

	configs.UserSalaSettings = &configs.UserSettings{UserHooksPath: "/home/user/.config/sala"}
	runner := NewRunner("/repo")
	assert.Equal(t, []string{filepath.Join("/repo", ".sala"), "/home/user/.config/sala"}, runner.Dirs)

	configs.UserSalaSettings = &configs.UserSettings{}
	assert.Equal(t, []string{filepath.Join("/repo", ".sala")}, NewRunner("/repo").Dirs)
}
