// Package secrets implements sala's repository: the encrypted master key,
// unlocking it, and reading and writing encrypted secret files.
//
// # Repository Layout
//
//	<repo>/.sala/key      master key, encrypted under the master passphrase
//	<repo>/.sala/config   repository-local configuration
//	<repo>/<path>         one encrypted secret per file
//
// # Key Hierarchy
//
// The master key is KeyLength random bytes, stored as lowercase hex text
// encrypted under the master passphrase. Unlocking decrypts it into memory;
// the hex text is then used as the passphrase for every secret file. The
// plaintext key is never written to disk.
//
// # Atomic Writes
//
// WriteSecret streams ciphertext to "<path>.tmp" and renames it over <path>
// only after encryption succeeded, so <path> never holds a partial message.
// The temporary name is fixed: concurrent writes to the same secret are not
// supported.
//
// All encryption goes through a gpg.Tool.
package secrets
