// Package formats imports and exports keys as JWK and PEM.
//
// JWK follows RFC 7517/8037: Ed25519 keys are OKP with x (and d for
// private material); secp256k1 keys are EC with uncompressed x and y
// coordinates. PEM carries the raw key bytes in PUBLIC KEY, PRIVATE KEY
// (Ed25519) or EC PRIVATE KEY (secp256k1) blocks with no ASN.1 wrapping.
//
// Raw byte import/export lives on the crypto package itself
// (KeyPair.ExportRaw, crypto.FromPrivateKeyBytes, crypto.PublicKeyFromBytes)
// because raw bytes carry no algorithm tag.
package formats
