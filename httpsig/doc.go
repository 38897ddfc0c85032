// Package httpsig signs and verifies HTTP messages per RFC 9421.
//
// A Signer canonicalizes the chosen message components, signs the
// signature base with a crypto.KeyPair and attaches Signature-Input and
// Signature headers under the "sig1" label. A Verifier reverses the
// process against a public key, checking the created/expires window and
// the keyid parameter before the cryptographic check.
package httpsig
