package crypto

// Algorithm identifies a supported signature scheme.
type Algorithm int

const (
	// Ed25519 per RFC 8032: 32-byte seed, 32-byte public point,
	// 64-byte signatures, deterministic.
	Ed25519 Algorithm = iota
	// Secp256k1 ECDSA over SHA-256 digests: 32-byte scalar, 33-byte
	// compressed public point, DER signatures, RFC 6979 nonces.
	Secp256k1
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Ed25519:
		return "ed25519"
	case Secp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	return a == Ed25519 || a == Secp256k1
}

// ParseAlgorithm maps an algorithm name to its tag.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "ed25519":
		return Ed25519, nil
	case "secp256k1":
		return Secp256k1, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Key and signature sizes, in bytes.
const (
	Ed25519PrivateKeySize   = 32
	Ed25519PublicKeySize    = 32
	Ed25519SignatureSize    = 64
	Secp256k1PrivateKeySize = 32
	Secp256k1PublicKeySize  = 33
)

func (a Algorithm) publicKeySize() int {
	if a == Secp256k1 {
		return Secp256k1PublicKeySize
	}
	return Ed25519PublicKeySize
}
