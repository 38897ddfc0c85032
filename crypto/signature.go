package crypto

import (
	"encoding/base64"

	"github.com/pkg/errors"

	"sagecrypto/memzero"
)

// Signature is a pure value: it carries no reference to the signing key
// or message and re-verifies against any candidate (public key, message).
type Signature struct {
	alg Algorithm
	raw []byte
}

// SignatureFromBytes validates raw signature bytes for alg. Ed25519
// signatures are exactly 64 bytes; secp256k1 signatures are DER.
func SignatureFromBytes(alg Algorithm, raw []byte) (Signature, error) {
	switch alg {
	case Ed25519:
		if len(raw) != Ed25519SignatureSize {
			return Signature{}, errors.Wrapf(ErrMalformed,
				"ed25519 signature must be %d bytes, got %d", Ed25519SignatureSize, len(raw))
		}
	case Secp256k1:
		if len(raw) == 0 {
			return Signature{}, errors.Wrap(ErrMalformed, "empty secp256k1 signature")
		}
	default:
		return Signature{}, ErrUnsupportedAlgorithm
	}
	return Signature{alg: alg, raw: append([]byte(nil), raw...)}, nil
}

// Algorithm returns the signature's algorithm tag.
func (s Signature) Algorithm() Algorithm { return s.alg }

// Bytes returns a copy of the raw signature bytes.
func (s Signature) Bytes() []byte { return append([]byte(nil), s.raw...) }

// Base64 returns the standard base64 encoding of the signature bytes.
func (s Signature) Base64() string { return base64.StdEncoding.EncodeToString(s.raw) }

// Dispose wipes the signature bytes. Signatures hold no secret material,
// so this is optional; provided for callers that zero everything.
func (s *Signature) Dispose() {
	memzero.Zero(s.raw)
	s.raw = nil
}

// Signer produces signatures over messages.
type Signer interface {
	Sign(message []byte) (Signature, error)
}

// Verifier checks signatures over messages.
type Verifier interface {
	Verify(message []byte, sig Signature) error
}

// Compile-time interface assertions.
var (
	_ Signer   = (*KeyPair)(nil)
	_ Verifier = (*KeyPair)(nil)
	_ Verifier = PublicKey{}
)
