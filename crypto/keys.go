package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"sync"

	"github.com/pkg/errors"

	"sagecrypto/internal/lifecycle"
	"sagecrypto/memzero"
)

// keyIDBytes is the number of hash bytes kept for a key ID: 16 hex chars.
const keyIDBytes = 8

// PublicKey is the shareable half of a key pair. The zero value is not
// usable; construct via KeyPair.PublicKey or PublicKeyFromBytes.
type PublicKey struct {
	alg Algorithm
	raw []byte
}

// PublicKeyFromBytes validates raw public key bytes for alg.
func PublicKeyFromBytes(alg Algorithm, raw []byte) (PublicKey, error) {
	if !alg.Valid() {
		return PublicKey{}, ErrUnsupportedAlgorithm
	}
	if len(raw) != alg.publicKeySize() {
		return PublicKey{}, errors.Wrapf(ErrMalformed, "%s public key must be %d bytes, got %d",
			alg, alg.publicKeySize(), len(raw))
	}
	if alg == Secp256k1 {
		// Length alone does not prove the point is on the curve.
		if _, err := parseSecp256k1Public(raw); err != nil {
			return PublicKey{}, err
		}
	}
	return PublicKey{alg: alg, raw: append([]byte(nil), raw...)}, nil
}

// Algorithm returns the key's algorithm tag.
func (p PublicKey) Algorithm() Algorithm { return p.alg }

// Bytes returns a copy of the raw public key bytes.
func (p PublicKey) Bytes() []byte { return append([]byte(nil), p.raw...) }

// KeyID returns the stable display identifier for this key.
func (p PublicKey) KeyID() string { return keyID(p.raw) }

// Verify checks sig over message under this key. It returns nil on
// success, ErrMalformed for structurally invalid input and
// ErrVerificationFailed for a well-formed signature that does not match.
func (p PublicKey) Verify(message []byte, sig Signature) error {
	if !lifecycle.Initialized() {
		return ErrNotInitialized
	}
	if len(p.raw) == 0 {
		return errors.Wrap(ErrInvalidArgument, "zero public key")
	}
	if p.alg != sig.alg {
		return errors.Wrapf(ErrMalformed, "key is %s but signature is %s", p.alg, sig.alg)
	}
	switch p.alg {
	case Ed25519:
		return verifyEd25519(p.raw, message, sig.raw)
	case Secp256k1:
		return verifySecp256k1(p.raw, message, sig.raw)
	default:
		return ErrUnsupportedAlgorithm
	}
}

// KeyPair owns a private scalar and its derived public point. Immutable
// after construction; Dispose wipes the private half.
type KeyPair struct {
	alg   Algorithm
	keyID string
	pub   []byte

	mu       sync.RWMutex
	priv     []byte
	disposed bool
}

// Generate creates a new key pair for alg from the system CSPRNG.
// Entropy failure is reported as ErrRandomnessUnavailable.
func Generate(alg Algorithm) (*KeyPair, error) {
	if !lifecycle.Initialized() {
		return nil, ErrNotInitialized
	}
	var (
		priv, pub []byte
		err       error
	)
	switch alg {
	case Ed25519:
		priv, pub, err = generateEd25519()
	case Secp256k1:
		priv, pub, err = generateSecp256k1()
	default:
		return nil, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, err
	}
	return newKeyPair(alg, priv, pub), nil
}

// Import builds a key pair from raw private and public key bytes. The
// public key is re-derived from the private key and compared; a mismatch
// fails with ErrKeyMismatch. There is no trusting fast path.
func Import(alg Algorithm, priv, pub []byte) (*KeyPair, error) {
	kp, err := FromPrivateKeyBytes(alg, priv)
	if err != nil {
		return nil, err
	}
	if len(pub) != len(kp.pub) || subtle.ConstantTimeCompare(pub, kp.pub) != 1 {
		kp.Dispose()
		return nil, ErrKeyMismatch
	}
	return kp, nil
}

// FromPrivateKeyBytes builds a key pair from raw private key bytes,
// deriving the public point.
func FromPrivateKeyBytes(alg Algorithm, priv []byte) (*KeyPair, error) {
	if !lifecycle.Initialized() {
		return nil, ErrNotInitialized
	}
	var (
		pub []byte
		err error
	)
	switch alg {
	case Ed25519:
		pub, err = deriveEd25519(priv)
	case Secp256k1:
		pub, err = deriveSecp256k1(priv)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, err
	}
	return newKeyPair(alg, append([]byte(nil), priv...), pub), nil
}

func newKeyPair(alg Algorithm, priv, pub []byte) *KeyPair {
	return &KeyPair{
		alg:   alg,
		keyID: keyID(pub),
		pub:   pub,
		priv:  priv,
	}
}

// Algorithm returns the key pair's algorithm tag.
func (k *KeyPair) Algorithm() Algorithm { return k.alg }

// KeyID returns the stable display identifier, computed once at
// construction from the public key. Safe after Dispose.
func (k *KeyPair) KeyID() string { return k.keyID }

// PublicKey returns the shareable half of the pair. Safe after Dispose.
func (k *KeyPair) PublicKey() PublicKey {
	return PublicKey{alg: k.alg, raw: append([]byte(nil), k.pub...)}
}

// ExportRaw copies out the raw private and public key bytes. Copying the
// private half is an explicit, caller-audited action; wipe the returned
// priv slice with memzero.Zero when done.
func (k *KeyPair) ExportRaw() (priv, pub []byte, err error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.disposed {
		return nil, nil, ErrKeyDisposed
	}
	return append([]byte(nil), k.priv...), append([]byte(nil), k.pub...), nil
}

// Sign produces a signature over message. Deterministic: the same key and
// message always yield the same bytes. Fails with ErrKeyDisposed after
// Dispose.
func (k *KeyPair) Sign(message []byte) (Signature, error) {
	if !lifecycle.Initialized() {
		return Signature{}, ErrNotInitialized
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.disposed {
		return Signature{}, ErrKeyDisposed
	}
	switch k.alg {
	case Ed25519:
		return Signature{alg: Ed25519, raw: signEd25519(k.priv, message)}, nil
	case Secp256k1:
		raw, err := signSecp256k1(k.priv, message)
		if err != nil {
			return Signature{}, err
		}
		return Signature{alg: Secp256k1, raw: raw}, nil
	default:
		return Signature{}, ErrUnsupportedAlgorithm
	}
}

// Verify checks sig over message using only the public half, so it keeps
// working after Dispose.
func (k *KeyPair) Verify(message []byte, sig Signature) error {
	return k.PublicKey().Verify(message, sig)
}

// Dispose wipes the private scalar in place and marks the pair unusable
// for signing and export. Idempotent: later calls are no-ops. Held locks
// ensure no concurrent signer observes a half-wiped key.
func (k *KeyPair) Dispose() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.disposed {
		return
	}
	memzero.Zero(k.priv)
	k.disposed = true
}

// Disposed reports whether Dispose has run.
func (k *KeyPair) Disposed() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.disposed
}

// keyID hashes public key bytes into a fixed-width printable identifier.
func keyID(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:keyIDBytes])
}
