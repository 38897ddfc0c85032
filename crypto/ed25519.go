package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/pkg/errors"
)

// generateEd25519 draws a fresh 32-byte seed and derives the public point.
func generateEd25519() (priv, pub []byte, err error) {
	seed := make([]byte, Ed25519PrivateKeySize)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, errors.Wrapf(ErrRandomnessUnavailable, "reading seed: %v", err)
	}
	sk := ed25519.NewKeyFromSeed(seed)
	pub = append([]byte(nil), sk[Ed25519PrivateKeySize:]...)
	return seed, pub, nil
}

// deriveEd25519 computes the public point for a 32-byte seed.
func deriveEd25519(priv []byte) ([]byte, error) {
	if len(priv) != Ed25519PrivateKeySize {
		return nil, errors.Wrapf(ErrMalformed, "ed25519 private key must be %d bytes, got %d",
			Ed25519PrivateKeySize, len(priv))
	}
	sk := ed25519.NewKeyFromSeed(priv)
	return append([]byte(nil), sk[Ed25519PrivateKeySize:]...), nil
}

// signEd25519 signs msg with the given seed. Deterministic per RFC 8032.
func signEd25519(priv, msg []byte) []byte {
	sk := ed25519.NewKeyFromSeed(priv)
	return ed25519.Sign(sk, msg)
}

// verifyEd25519 checks sig over msg under pub, separating structural
// defects (ErrMalformed) from honest mismatches (ErrVerificationFailed).
func verifyEd25519(pub, msg, sig []byte) error {
	if len(pub) != Ed25519PublicKeySize {
		return errors.Wrapf(ErrMalformed, "ed25519 public key must be %d bytes, got %d",
			Ed25519PublicKeySize, len(pub))
	}
	if len(sig) != Ed25519SignatureSize {
		return errors.Wrapf(ErrMalformed, "ed25519 signature must be %d bytes, got %d",
			Ed25519SignatureSize, len(sig))
	}
	// Scalar s must be canonical; the top three bits are never set for
	// s < L. Rejecting here also blocks the standard malleability trick.
	if sig[63]&0xE0 != 0 {
		return errors.Wrap(ErrMalformed, "ed25519 signature scalar out of range")
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), msg, sig) {
		return ErrVerificationFailed
	}
	return nil
}
