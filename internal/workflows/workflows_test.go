package workflows

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/PolarWolf314/sala/internal/configs"
	"github.com/PolarWolf314/sala/internal/gpg/gpgtest"
	logger "github.com/PolarWolf314/sala/internal/logging"
	"github.com/PolarWolf314/sala/internal/prompt"
	"github.com/PolarWolf314/sala/internal/secrets"
	"github.com/stretchr/testify/require"
)

const masterPassphrase = "foobar"

type recordingHooks struct {
	gets     []string
	sets     []string
	warnings []string
}

func (h *recordingHooks) PostGet(path string, secret []byte) []string {
	h.gets = append(h.gets, path+"="+string(secret))
	return h.warnings
}

func (h *recordingHooks) PostSet(path string) []string {
	h.sets = append(h.sets, path)
	return h.warnings
}

// testConfig disables the password generator so no external command runs.
func testConfig() *configs.Config {
	cfg := configs.Default()
	cfg.PasswordGenerator = ""
	return &cfg
}

func newRepo(t *testing.T) (*secrets.Repository, *gpgtest.Fake) {
	t.Helper()
	fake := gpgtest.New()
	return secrets.Open(t.TempDir(), fake, logger.Logger{Out: io.Discard}), fake
}

func initRepo(t *testing.T) (*secrets.Repository, *gpgtest.Fake) {
	t.Helper()
	repo, fake := newRepo(t)
	_, err := Init(context.Background(), InitOptions{
		Repo:     repo,
		Config:   testConfig(),
		Prompter: prompt.NewScripted(masterPassphrase, masterPassphrase),
		Logger:   logger.Logger{Out: io.Discard},
	})
	require.NoError(t, err)
	return repo, fake
}

func accessOptions(repo *secrets.Repository, p prompt.Prompter, paths ...string) AccessOptions {
	return AccessOptions{
		Repo:     repo,
		Config:   testConfig(),
		Paths:    paths,
		Prompter: p,
		Logger:   logger.Logger{Out: io.Discard},
	}
}

func setSecret(t *testing.T, repo *secrets.Repository, path, value string) {
	t.Helper()
	_, err := Set(context.Background(), accessOptions(repo, prompt.NewScripted(masterPassphrase, value, value), path))
	require.NoError(t, err)
}

func fileSnapshot(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
