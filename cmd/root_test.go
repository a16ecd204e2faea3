package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
)

func TestRepositoryDirectory(t *testing.T) {
	t.Run("FromEnvironment", func(t *testing.T) {
		env := setupTestEnvironment(t)
		initializeRepository(t, env)
		storeSecret(t, env, "foo", "hello")

		t.Setenv(DirectoryEnvVar, env.RepoDir)
		stdout, _, err := runCLI(t, nil, []string{testPassphrase}, "-r", "foo")
		if err != nil {
			t.Fatalf("Command failed: %v", err)
		}
		if stdout != "hello\n" {
			t.Errorf("Expected %q, got %q", "hello\n", stdout)
		}
	})

	t.Run("FlagOverridesEnvironment", func(t *testing.T) {
		env := setupTestEnvironment(t)
		initializeRepository(t, env)
		storeSecret(t, env, "foo", "hello")

		t.Setenv(DirectoryEnvVar, t.TempDir())
		stdout, _, err := runCLI(t, env, []string{testPassphrase}, "-r", "foo")
		if err != nil {
			t.Fatalf("Command failed: %v", err)
		}
		if stdout != "hello\n" {
			t.Errorf("Expected %q, got %q", "hello\n", stdout)
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		setupTestEnvironment(t)
		missing := filepath.Join(t.TempDir(), "missing")

		_, _, err := runCLI(t, nil, nil, "-C", missing, "foo")
		if !errors.Is(err, kerrors.ErrCannotChangeDirectory) {
			t.Fatalf("Expected ErrCannotChangeDirectory, got %v", err)
		}
		if got := ErrorMessage(err); got != "Error: Cannot change to directory: "+missing {
			t.Errorf("Unexpected message: %q", got)
		}
	})
}

func TestUsageErrors(t *testing.T) {
	t.Run("NoArguments", func(t *testing.T) {
		env := setupTestEnvironment(t)
		_, _, err := runCLI(t, env, nil)
		if got := ErrorMessage(err); got != "Try `sala --help'" {
			t.Errorf("Unexpected message: %q", got)
		}
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		env := setupTestEnvironment(t)
		_, _, err := runCLI(t, env, nil, "--bogus", "foo")
		if !errors.Is(err, kerrors.ErrUsage) {
			t.Fatalf("Expected ErrUsage, got %v", err)
		}
		msg := ErrorMessage(err)
		if !strings.HasPrefix(msg, "Error: unknown flag: --bogus") || !strings.HasSuffix(msg, "Try `sala --help'") {
			t.Errorf("Unexpected message: %q", msg)
		}
	})

	t.Run("GetWithoutPath", func(t *testing.T) {
		env := setupTestEnvironment(t)
		_, _, err := runCLI(t, env, nil, "get")
		if !errors.Is(err, kerrors.ErrUsage) {
			t.Fatalf("Expected ErrUsage, got %v", err)
		}
	})
}

func TestVersionFlag(t *testing.T) {
	env := setupTestEnvironment(t)
	stdout, _, err := runCLI(t, env, nil, "--version")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, Version) {
		t.Errorf("Expected version %s in output, got %q", Version, stdout)
	}
}

func TestErrorMessageFallback(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	err := errors.New("disk on fire")
	if got := ErrorMessage(err); got != "Error: disk on fire" {
		t.Errorf("Unexpected message: %q", got)
	}
}
