package formats

import (
	"encoding/base64"
	"encoding/json"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"sagecrypto/crypto"
	"sagecrypto/memzero"
)

// jwk is the superset of the fields used by both key types.
type jwk struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y,omitempty"`
	D   string `json:"d,omitempty"`
	Kid string `json:"kid,omitempty"`
}

func exportPublicJWK(pub crypto.PublicKey) ([]byte, error) {
	j, err := publicFields(pub)
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}

func exportPairJWK(kp *crypto.KeyPair) ([]byte, error) {
	priv, _, err := kp.ExportRaw()
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(priv)

	j, err := publicFields(kp.PublicKey())
	if err != nil {
		return nil, err
	}
	j.D = b64url(priv)
	return json.Marshal(j)
}

func importPublicJWK(data []byte) (crypto.PublicKey, error) {
	j, err := parseJWK(data)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	alg, pub, err := publicBytes(j)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	return crypto.PublicKeyFromBytes(alg, pub)
}

func importPairJWK(data []byte) (*crypto.KeyPair, error) {
	j, err := parseJWK(data)
	if err != nil {
		return nil, err
	}
	if j.D == "" {
		return nil, errors.Wrap(crypto.ErrMalformed, "jwk has no private component")
	}
	alg, pub, err := publicBytes(j)
	if err != nil {
		return nil, err
	}
	priv, err := unb64url(j.D)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(priv)
	return crypto.Import(alg, priv, pub)
}

// publicFields builds the public-only JWK fields for a key.
func publicFields(pub crypto.PublicKey) (jwk, error) {
	raw := pub.Bytes()
	switch pub.Algorithm() {
	case crypto.Ed25519:
		return jwk{
			Kty: "OKP",
			Crv: "Ed25519",
			X:   b64url(raw),
			Kid: pub.KeyID(),
		}, nil
	case crypto.Secp256k1:
		pk, err := secp256k1.ParsePubKey(raw)
		if err != nil {
			return jwk{}, errors.Wrapf(crypto.ErrMalformed, "secp256k1 public key: %v", err)
		}
		// SerializeUncompressed is 0x04 || X || Y.
		un := pk.SerializeUncompressed()
		return jwk{
			Kty: "EC",
			Crv: "secp256k1",
			X:   b64url(un[1:33]),
			Y:   b64url(un[33:65]),
			Kid: pub.KeyID(),
		}, nil
	default:
		return jwk{}, crypto.ErrUnsupportedAlgorithm
	}
}

// publicBytes reconstructs raw public key bytes from JWK fields.
func publicBytes(j jwk) (crypto.Algorithm, []byte, error) {
	switch {
	case j.Kty == "OKP" && j.Crv == "Ed25519":
		x, err := unb64url(j.X)
		if err != nil {
			return 0, nil, err
		}
		return crypto.Ed25519, x, nil
	case j.Kty == "EC" && j.Crv == "secp256k1":
		x, err := unb64url(j.X)
		if err != nil {
			return 0, nil, err
		}
		y, err := unb64url(j.Y)
		if err != nil {
			return 0, nil, err
		}
		if len(x) != 32 || len(y) != 32 {
			return 0, nil, errors.Wrap(crypto.ErrMalformed, "secp256k1 jwk coordinates must be 32 bytes")
		}
		un := make([]byte, 0, 65)
		un = append(un, 0x04)
		un = append(un, x...)
		un = append(un, y...)
		pk, err := secp256k1.ParsePubKey(un)
		if err != nil {
			return 0, nil, errors.Wrapf(crypto.ErrMalformed, "secp256k1 jwk point: %v", err)
		}
		return crypto.Secp256k1, pk.SerializeCompressed(), nil
	default:
		return 0, nil, errors.Wrapf(crypto.ErrMalformed, "unsupported jwk kty=%q crv=%q", j.Kty, j.Crv)
	}
}

func parseJWK(data []byte) (jwk, error) {
	var j jwk
	if err := json.Unmarshal(data, &j); err != nil {
		return jwk{}, errors.Wrapf(crypto.ErrMalformed, "jwk: %v", err)
	}
	return j, nil
}

func b64url(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func unb64url(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(crypto.ErrMalformed, "jwk base64url: %v", err)
	}
	return b, nil
}
