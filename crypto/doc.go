// Package crypto implements key pair lifecycle, signing and verification
// for the signature algorithms the library supports.
//
// Contents
//
//   - Algorithm tags and their key/signature sizes (Ed25519, Secp256k1)
//   - KeyPair generation, import, raw export, key IDs and secure disposal
//   - Deterministic signing (Sign) and strict verification (Verify)
//   - The closed error taxonomy shared by all operations (errors.go)
//
// # Notes
//
// KeyPair is immutable after construction except for Dispose, which zeroes
// the private scalar in place. Sign and Verify may be called concurrently;
// Dispose takes the same lock, so no caller observes a half-wiped key.
// All operations except pure accessors require sagecrypto.Initialize to
// have run and fail with ErrNotInitialized otherwise.
package crypto
