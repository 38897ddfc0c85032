// Package commands implements the sagecrypto CLI: key generation,
// inspection, export, signing and verification against a
// passphrase-encrypted on-disk keystore.
package commands
