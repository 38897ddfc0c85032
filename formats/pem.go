package formats

import (
	"encoding/pem"

	"github.com/pkg/errors"

	"sagecrypto/crypto"
	"sagecrypto/memzero"
)

// PEM block types. Raw key bytes only; no ASN.1 at this layer.
const (
	pemPublic      = "PUBLIC KEY"
	pemPrivate     = "PRIVATE KEY"    // Ed25519
	pemECPrivate   = "EC PRIVATE KEY" // secp256k1
	pemKeyIDHeader = "Key-ID"
)

func exportPublicPEM(pub crypto.PublicKey) ([]byte, error) {
	return pem.EncodeToMemory(&pem.Block{
		Type:    pemPublic,
		Headers: map[string]string{pemKeyIDHeader: pub.KeyID()},
		Bytes:   pub.Bytes(),
	}), nil
}

func exportPairPEM(kp *crypto.KeyPair) ([]byte, error) {
	priv, _, err := kp.ExportRaw()
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(priv)

	blockType := pemPrivate
	if kp.Algorithm() == crypto.Secp256k1 {
		blockType = pemECPrivate
	}
	return pem.EncodeToMemory(&pem.Block{
		Type:    blockType,
		Headers: map[string]string{pemKeyIDHeader: kp.KeyID()},
		Bytes:   priv,
	}), nil
}

func importPublicPEM(data []byte) (crypto.PublicKey, error) {
	block, err := decodePEM(data, pemPublic)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	// The block holds raw bytes, so the algorithm is read off the length:
	// Ed25519 points are 32 bytes, compressed secp256k1 points are 33.
	switch len(block.Bytes) {
	case crypto.Ed25519PublicKeySize:
		return crypto.PublicKeyFromBytes(crypto.Ed25519, block.Bytes)
	case crypto.Secp256k1PublicKeySize:
		return crypto.PublicKeyFromBytes(crypto.Secp256k1, block.Bytes)
	default:
		return crypto.PublicKey{}, errors.Wrapf(crypto.ErrMalformed,
			"public key pem holds %d bytes", len(block.Bytes))
	}
}

func importPairPEM(data []byte) (*crypto.KeyPair, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.Wrap(crypto.ErrMalformed, "no pem block found")
	}
	defer memzero.Zero(block.Bytes)

	switch block.Type {
	case pemPrivate:
		return crypto.FromPrivateKeyBytes(crypto.Ed25519, block.Bytes)
	case pemECPrivate:
		return crypto.FromPrivateKeyBytes(crypto.Secp256k1, block.Bytes)
	default:
		return nil, errors.Wrapf(crypto.ErrMalformed, "unexpected pem block %q", block.Type)
	}
}

func decodePEM(data []byte, wantType string) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.Wrap(crypto.ErrMalformed, "no pem block found")
	}
	if block.Type != wantType {
		return nil, errors.Wrapf(crypto.ErrMalformed, "unexpected pem block %q", block.Type)
	}
	return block, nil
}
