package crypto

import (
	"crypto/sha256"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
)

// generateSecp256k1 draws a fresh private scalar and derives the
// compressed public point.
func generateSecp256k1() (priv, pub []byte, err error) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, errors.Wrapf(ErrRandomnessUnavailable, "generating scalar: %v", err)
	}
	return sk.Serialize(), sk.PubKey().SerializeCompressed(), nil
}

// deriveSecp256k1 computes the compressed public point for a 32-byte
// private scalar.
func deriveSecp256k1(priv []byte) ([]byte, error) {
	sk, err := parseSecp256k1Private(priv)
	if err != nil {
		return nil, err
	}
	return sk.PubKey().SerializeCompressed(), nil
}

// signSecp256k1 signs SHA-256(msg) with an RFC 6979 deterministic nonce
// and returns the DER-encoded signature.
func signSecp256k1(priv, msg []byte) ([]byte, error) {
	sk, err := parseSecp256k1Private(priv)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(msg)
	return secpecdsa.Sign(sk, digest[:]).Serialize(), nil
}

// verifySecp256k1 checks a DER signature over SHA-256(msg) under a
// compressed public key.
func verifySecp256k1(pub, msg, sig []byte) error {
	pk, err := parseSecp256k1Public(pub)
	if err != nil {
		return err
	}
	parsed, err := secpecdsa.ParseDERSignature(sig)
	if err != nil {
		return errors.Wrapf(ErrMalformed, "secp256k1 signature: %v", err)
	}
	digest := sha256.Sum256(msg)
	if !parsed.Verify(digest[:], pk) {
		return ErrVerificationFailed
	}
	return nil
}

// parseSecp256k1Public decodes and validates a curve point.
func parseSecp256k1Public(pub []byte) (*secp256k1.PublicKey, error) {
	pk, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "secp256k1 public key: %v", err)
	}
	return pk, nil
}

// parseSecp256k1Private validates and deserializes a private scalar.
func parseSecp256k1Private(priv []byte) (*secp256k1.PrivateKey, error) {
	if len(priv) != Secp256k1PrivateKeySize {
		return nil, errors.Wrapf(ErrMalformed, "secp256k1 private key must be %d bytes, got %d",
			Secp256k1PrivateKeySize, len(priv))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(priv); overflow {
		return nil, errors.Wrap(ErrMalformed, "secp256k1 private key is not less than the group order")
	}
	if scalar.IsZero() {
		return nil, errors.Wrap(ErrMalformed, "secp256k1 private key is zero")
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}
