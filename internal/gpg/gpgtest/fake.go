// Package gpgtest provides an in-process gpg.Tool for tests.
//
// Fake encrypts with NaCl secretbox under a key derived from the passphrase
// with scrypt, so a wrong passphrase fails authentication the same way a real
// gpg run would, without needing a gpg binary or agent.
package gpgtest

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/PolarWolf314/sala/internal/gpg"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	beginLine = "-----BEGIN SALA TEST MESSAGE-----"
	endLine   = "-----END SALA TEST MESSAGE-----"

	saltSize  = 16
	nonceSize = 24
)

// Fake is a gpg.Tool that never spawns a process.
type Fake struct {
	mu sync.Mutex

	// FailEncrypt makes Encrypt write a partial message and then fail.
	FailEncrypt bool

	// Ciphers records the cipher of every Encrypt call.
	Ciphers []string

	// Decrypts counts Decrypt calls.
	Decrypts int
}

var _ gpg.Tool = (*Fake)(nil)

// New returns a ready Fake.
func New() *Fake {
	return &Fake{}
}

func deriveKey(passphrase, salt []byte) (*[32]byte, error) {
	derived, err := scrypt.Key(passphrase, salt, 1<<10, 8, 1, 32)
	if err != nil {
		return nil, err
	}
	var key [32]byte
	copy(key[:], derived)
	return &key, nil
}

// Encrypt writes an armored secretbox message for plaintext to out.
func (f *Fake) Encrypt(plaintext, passphrase []byte, cipher string, out io.Writer) error {
	f.mu.Lock()
	f.Ciphers = append(f.Ciphers, cipher)
	fail := f.FailEncrypt
	f.mu.Unlock()

	if fail {
		fmt.Fprintf(out, "%s\nCipher: %s\n", beginLine, cipher)
		return &gpg.OperationFailedError{Op: "encrypt", Stderr: "gpg: simulated failure", ExitCode: 2}
	}

	var salt [saltSize]byte
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return err
	}

	key, err := deriveKey(passphrase, salt[:])
	if err != nil {
		return err
	}

	sealed := secretbox.Seal(append(salt[:], nonce[:]...), plaintext, &nonce, key)

	_, err = fmt.Fprintf(out, "%s\nCipher: %s\n\n%s\n%s\n",
		beginLine, cipher, base64.StdEncoding.EncodeToString(sealed), endLine)
	return err
}

// Decrypt opens a message written by Encrypt.
func (f *Fake) Decrypt(path string, passphrase []byte) ([]byte, error) {
	f.mu.Lock()
	f.Decrypts++
	f.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &gpg.OperationFailedError{Op: "decrypt", Stderr: "gpg: can't open '" + path + "'", ExitCode: 2}
		}
		return nil, err
	}

	sealed, err := parseMessage(data)
	if err != nil {
		return nil, &gpg.OperationFailedError{Op: "decrypt", Stderr: "gpg: " + err.Error(), ExitCode: 2}
	}

	key, err := deriveKey(passphrase, sealed[:saltSize])
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[saltSize:saltSize+nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return nil, &gpg.OperationFailedError{Op: "decrypt", Stderr: "gpg: decryption failed: Bad session key", ExitCode: 2}
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// CipherOf returns the cipher recorded in an encrypted file.
func CipherOf(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if cipher, ok := strings.CutPrefix(scanner.Text(), "Cipher: "); ok {
			return cipher, nil
		}
	}
	return "", errors.New("no cipher header")
}

func parseMessage(data []byte) ([]byte, error) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 || lines[0] != beginLine || lines[len(lines)-1] != endLine {
		return nil, errors.New("no valid OpenPGP data found")
	}

	body := lines[len(lines)-2]
	sealed, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("invalid armor: %w", err)
	}
	if len(sealed) < saltSize+nonceSize+secretbox.Overhead {
		return nil, errors.New("message too short")
	}
	return sealed, nil
}
