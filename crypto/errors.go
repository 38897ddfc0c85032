package crypto

import "github.com/pkg/errors"

var (
	// ErrNotInitialized is returned when an operation runs before
	// sagecrypto.Initialize.
	ErrNotInitialized = errors.New("library not initialized")

	// ErrInvalidArgument is returned for nil handles and buffers of the
	// wrong length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRandomnessUnavailable is returned when the entropy source fails
	// during key generation. Never retried silently.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")

	// ErrVerificationFailed is returned for a well-formed signature that
	// does not verify. An expected outcome callers branch on, not a fault.
	ErrVerificationFailed = errors.New("signature verification failed")

	// ErrMalformed is returned for structurally invalid key or signature
	// bytes: wrong length, undecodable point, non-canonical encoding.
	ErrMalformed = errors.New("malformed input")

	// ErrKeyDisposed is returned when a disposed key pair is used.
	ErrKeyDisposed = errors.New("key pair disposed")

	// ErrKeyMismatch is returned by Import when the supplied public key is
	// not the derivation of the supplied private key.
	ErrKeyMismatch = errors.New("public key does not match private key")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm tag.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
