package formats

import (
	"github.com/pkg/errors"

	"sagecrypto/crypto"
)

// Format selects a serialization for key import and export.
type Format int

const (
	// JWK is the JSON Web Key encoding.
	JWK Format = iota
	// PEM wraps raw key bytes in a PEM block.
	PEM
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case JWK:
		return "jwk"
	case PEM:
		return "pem"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to its tag.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "jwk":
		return JWK, nil
	case "pem":
		return PEM, nil
	default:
		return 0, errors.Wrapf(crypto.ErrInvalidArgument, "unknown format %q", name)
	}
}

// ExportPublicKey serializes the public key in the given format.
func ExportPublicKey(pub crypto.PublicKey, f Format) ([]byte, error) {
	switch f {
	case JWK:
		return exportPublicJWK(pub)
	case PEM:
		return exportPublicPEM(pub)
	default:
		return nil, errors.Wrapf(crypto.ErrInvalidArgument, "unknown format %d", f)
	}
}

// ExportKeyPair serializes the full pair, private material included.
// The output is secret; wipe it with memzero.Zero once persisted.
func ExportKeyPair(kp *crypto.KeyPair, f Format) ([]byte, error) {
	if kp == nil {
		return nil, errors.Wrap(crypto.ErrInvalidArgument, "nil key pair")
	}
	switch f {
	case JWK:
		return exportPairJWK(kp)
	case PEM:
		return exportPairPEM(kp)
	default:
		return nil, errors.Wrapf(crypto.ErrInvalidArgument, "unknown format %d", f)
	}
}

// ImportPublicKey parses a public key; the algorithm is read from the
// serialized form.
func ImportPublicKey(data []byte, f Format) (crypto.PublicKey, error) {
	switch f {
	case JWK:
		return importPublicJWK(data)
	case PEM:
		return importPublicPEM(data)
	default:
		return crypto.PublicKey{}, errors.Wrapf(crypto.ErrInvalidArgument, "unknown format %d", f)
	}
}

// ImportKeyPair parses a full pair. The embedded public key is validated
// against the private key (crypto.Import semantics).
func ImportKeyPair(data []byte, f Format) (*crypto.KeyPair, error) {
	switch f {
	case JWK:
		return importPairJWK(data)
	case PEM:
		return importPairPEM(data)
	default:
		return nil, errors.Wrapf(crypto.ErrInvalidArgument, "unknown format %d", f)
	}
}
