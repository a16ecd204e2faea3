// Package gpg drives an external OpenPGP tool for symmetric encryption.
//
// The Tool interface is the only thing the rest of sala depends on:
//
//	type Tool interface {
//	    Decrypt(path string, passphrase []byte) ([]byte, error)
//	    Encrypt(plaintext, passphrase []byte, cipher string, out io.Writer) error
//	}
//
// GnuPG implements it by running gpg in batch mode. Tests use the in-process
// implementation in the gpgtest package instead.
//
// # Passphrase Handling
//
// Passphrases never appear in argv or the environment. Each invocation
// creates a PassphrasePipe, hands its read end to the child as an extra file
// descriptor and passes only the descriptor number with --passphrase-fd.
// After the child has started, the passphrase is written once and both ends
// are closed.
//
// # Limitations
//
// Calls block until the child exits. There is no timeout: a hung gpg hangs
// the caller.
package gpg
