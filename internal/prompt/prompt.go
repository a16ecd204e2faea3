// Package prompt reads passphrases and secrets from the user.
//
// When stdin is a terminal, input is read without echo. Otherwise one line
// is read from stdin, which is how scripts and tests drive sala. Prompts
// are always written to stderr so stdout only ever carries secrets.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/sala/internal/errors"
	"golang.org/x/term"
)

// Prompter asks for one hidden value.
type Prompter interface {
	Prompt(prompt string) ([]byte, error)
}

// Terminal prompts on a file, usually os.Stdin.
type Terminal struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewTerminal returns a Terminal reading from in and writing prompts to out.
// A single Terminal must be used for a whole invocation so that buffered
// piped input is not lost between prompts.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Prompt writes prompt and reads a value.
func (t *Terminal) Prompt(prompt string) ([]byte, error) {
	fmt.Fprint(t.out, prompt)

	fd := int(t.in.Fd())
	if term.IsTerminal(fd) {
		value, err := term.ReadPassword(fd)
		fmt.Fprintln(t.out) // Add newline after hidden input
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		return value, nil
	}

	if t.reader == nil {
		t.reader = bufio.NewReader(t.in)
	}
	return readLine(t.reader)
}

func readLine(reader *bufio.Reader) ([]byte, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return []byte(line), nil
}

// Confirmed asks for a value twice and fails with ErrInputsDidNotMatch if
// the two entries differ.
func Confirmed(p Prompter, prompt, confirm string) ([]byte, error) {
	first, err := p.Prompt(prompt)
	if err != nil {
		return nil, err
	}
	second, err := p.Prompt(confirm)
	if err != nil {
		return nil, err
	}
	if string(first) != string(second) {
		return nil, kerrors.ErrInputsDidNotMatch
	}
	return first, nil
}

// Choice lists numbered choices on out and asks for either an index into
// choices or a new value. A new value must be confirmed.
func Choice(p Prompter, out io.Writer, prompt, confirm string, choices []string) ([]byte, error) {
	fmt.Fprintln(out)
	for i, choice := range choices {
		fmt.Fprintf(out, "%d. %s\n", i, choice)
	}
	fmt.Fprintln(out)

	first, err := p.Prompt(prompt)
	if err != nil {
		return nil, err
	}

	if index, err := strconv.Atoi(string(first)); err == nil && index >= 0 && index < len(choices) {
		return []byte(choices[index]), nil
	}

	second, err := p.Prompt(confirm)
	if err != nil {
		return nil, err
	}
	if string(first) != string(second) {
		return nil, kerrors.ErrInputsDidNotMatch
	}
	return first, nil
}
