package gpg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var errPipeUsed = errors.New("passphrase pipe already used")

// PassphrasePipe is a one-shot pipe that carries a passphrase to exactly one
// child process.
//
// Both ends are created close-on-exec. Attach places the read end in the
// child's ExtraFiles, which is the only way it crosses exec; the write end is
// never inherited by any child. Close releases whatever is still open and is
// safe to call more than once, so callers defer it right after creation.
type PassphrasePipe struct {
	reader *os.File
	writer *os.File
}

// NewPassphrasePipe creates the pipe.
func NewPassphrasePipe() (*PassphrasePipe, error) {
	reader, writer, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating passphrase pipe: %w", err)
	}
	return &PassphrasePipe{reader: reader, writer: writer}, nil
}

// Attach hands the read end to cmd and returns the descriptor number the
// child will see it as. It must be called before cmd is started.
func (p *PassphrasePipe) Attach(cmd *exec.Cmd) (int, error) {
	if p.reader == nil {
		return 0, errPipeUsed
	}
	cmd.ExtraFiles = append(cmd.ExtraFiles, p.reader)
	// ExtraFiles[i] becomes descriptor 3+i in the child.
	return 2 + len(cmd.ExtraFiles), nil
}

// Send closes the parent's copy of the read end, writes the passphrase and
// closes the write end so the child sees EOF. It must be called after the
// child has started.
func (p *PassphrasePipe) Send(passphrase []byte) error {
	if p.writer == nil {
		return errPipeUsed
	}

	if p.reader != nil {
		p.reader.Close()
		p.reader = nil
	}

	_, writeErr := p.writer.Write(passphrase)
	closeErr := p.writer.Close()
	p.writer = nil

	if writeErr != nil {
		return fmt.Errorf("writing passphrase: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing passphrase pipe: %w", closeErr)
	}
	return nil
}

// Close closes any end that is still open.
func (p *PassphrasePipe) Close() error {
	var errs []error
	if p.reader != nil {
		errs = append(errs, p.reader.Close())
		p.reader = nil
	}
	if p.writer != nil {
		errs = append(errs, p.writer.Close())
		p.writer = nil
	}
	return errors.Join(errs...)
}
