// Testing utilities shared between the command tests. They run the real
// root command against a temporary repository with an in-process
// encryption tool and scripted answers instead of a terminal.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/sala/internal/configs"
	"github.com/PolarWolf314/sala/internal/gpg/gpgtest"
	"github.com/PolarWolf314/sala/internal/prompt"
)

const testPassphrase = "foobar"

type testEnv struct {
	RepoDir string
	UserDir string
	Tool    *gpgtest.Fake
}

// setupTestEnvironment points every user-level path at a temporary
// directory, disables the password generator and color, and installs a fake
// encryption tool. Everything is restored when the test ends.
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		RepoDir: t.TempDir(),
		UserDir: t.TempDir(),
		Tool:    gpgtest.New(),
	}

	originalUserSettings := configs.UserSalaSettings
	originalTool := newTool
	originalPrompter := newPrompter
	t.Cleanup(func() {
		configs.UserSalaSettings = originalUserSettings
		newTool = originalTool
		newPrompter = originalPrompter
		ResetGlobalState()
	})

	configs.UserSalaSettings = &configs.UserSettings{
		HomeConfigPath: filepath.Join(env.UserDir, ".sala.toml"),
		UserConfigPath: filepath.Join(env.UserDir, "sala.toml"),
		UserHooksPath:  filepath.Join(env.UserDir, "sala"),
	}
	if err := os.WriteFile(configs.UserSalaSettings.UserConfigPath, []byte("password-generator = \"\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write user config: %v", err)
	}

	t.Setenv(DirectoryEnvVar, "")
	t.Setenv("NO_COLOR", "1")

	SetTool(env.Tool)
	return env
}

// runCLI runs sala with args in env's repository, answering prompts from
// answers in order.
func runCLI(t *testing.T, env *testEnv, answers []string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	ResetGlobalState()
	SetPrompter(prompt.NewScripted(answers...))

	var outBuf, errBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)
	RootCmd.SetErr(&errBuf)
	if env != nil {
		args = append([]string{"-C", env.RepoDir}, args...)
	}
	RootCmd.SetArgs(args)

	err = RootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// initializeRepository runs `sala init` with testPassphrase.
func initializeRepository(t *testing.T, env *testEnv) {
	t.Helper()
	if _, stderr, err := runCLI(t, env, []string{testPassphrase, testPassphrase}, "init"); err != nil {
		t.Fatalf("Failed to initialize repository: %v\nstderr: %s", err, stderr)
	}
}

// storeSecret runs `sala set path` with value.
func storeSecret(t *testing.T, env *testEnv, path, value string) {
	t.Helper()
	if _, stderr, err := runCLI(t, env, []string{testPassphrase, value, value}, "set", path); err != nil {
		t.Fatalf("Failed to store %s: %v\nstderr: %s", path, err, stderr)
	}
}

func writeHook(t *testing.T, dir, name, script string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("Failed to create hook directory: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0700); err != nil {
		t.Fatalf("Failed to write hook: %v", err)
	}
	return path
}
