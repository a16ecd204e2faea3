package gpg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	logger "github.com/PolarWolf314/sala/internal/logging"
)

const (
	// DefaultBinary is the encryption tool looked up on PATH.
	DefaultBinary = "gpg"

	// BinaryEnvVar overrides DefaultBinary.
	BinaryEnvVar = "SALA_GPG"
)

// Tool performs symmetric encryption and decryption with a passphrase.
type Tool interface {
	// Decrypt returns the plaintext of the file at path.
	Decrypt(path string, passphrase []byte) ([]byte, error)

	// Encrypt writes the ASCII-armored ciphertext of plaintext to out.
	Encrypt(plaintext, passphrase []byte, cipher string, out io.Writer) error
}

// GnuPG runs gpg as a subprocess.
type GnuPG struct {
	// Binary is the executable to run. Empty means DefaultBinary.
	Binary string

	Logger logger.Logger
}

var _ Tool = (*GnuPG)(nil)

// NewGnuPG returns a GnuPG using $SALA_GPG when set.
func NewGnuPG(log logger.Logger) *GnuPG {
	return &GnuPG{
		Binary: os.Getenv(BinaryEnvVar),
		Logger: log,
	}
}

func (g *GnuPG) binary() string {
	if g.Binary != "" {
		return g.Binary
	}
	return DefaultBinary
}

// Decrypt runs gpg --decrypt on path.
func (g *GnuPG) Decrypt(path string, passphrase []byte) ([]byte, error) {
	var stdout bytes.Buffer
	if err := g.run("decrypt", []string{"--decrypt", "--", path}, passphrase, nil, &stdout); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Encrypt runs gpg --symmetric, feeding plaintext on stdin and streaming the
// armored ciphertext to out.
func (g *GnuPG) Encrypt(plaintext, passphrase []byte, cipher string, out io.Writer) error {
	args := []string{"--symmetric"}
	if cipher != "" {
		args = append(args, "--cipher-algo", cipher)
	}
	return g.run("encrypt", args, passphrase, bytes.NewReader(plaintext), out)
}

func (g *GnuPG) run(op string, args []string, passphrase []byte, stdin io.Reader, stdout io.Writer) error {
	pipe, err := NewPassphrasePipe()
	if err != nil {
		return err
	}
	defer pipe.Close()

	// Deliberately not exec.CommandContext: once the passphrase is handed
	// over, the child runs to completion.
	cmd := exec.Command(g.binary())
	fd, err := pipe.Attach(cmd)
	if err != nil {
		return err
	}

	cmd.Args = append(cmd.Args,
		"--batch", "--no-tty", "--armor",
		"--pinentry-mode", "loopback", "--no-symkey-cache",
		"--passphrase-fd", strconv.Itoa(fd),
	)
	cmd.Args = append(cmd.Args, args...)

	var stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	g.Logger.Debugf("Running %s", strings.Join(cmd.Args, " "))

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", g.binary(), err)
	}

	sendErr := pipe.Send(passphrase)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return newOperationFailedError(op, exitErr.ProcessState, stderr.String())
		}
		return fmt.Errorf("running %s: %w", g.binary(), err)
	}

	// Exit status 0 does not excuse a failed passphrase write.
	if sendErr != nil {
		return sendErr
	}

	return nil
}
