package formats_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"sagecrypto"
	"sagecrypto/crypto"
	"sagecrypto/formats"
)

func mustKeyPair(t *testing.T, alg crypto.Algorithm) *crypto.KeyPair {
	t.Helper()
	if err := sagecrypto.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	kp, err := crypto.Generate(alg)
	if err != nil {
		t.Fatalf("Generate(%s): %v", alg, err)
	}
	return kp
}

func TestJWKPublicKeyRoundTrip(t *testing.T) {
	for _, alg := range []crypto.Algorithm{crypto.Ed25519, crypto.Secp256k1} {
		kp := mustKeyPair(t, alg)
		data, err := formats.ExportPublicKey(kp.PublicKey(), formats.JWK)
		if err != nil {
			t.Fatalf("ExportPublicKey(%s): %v", alg, err)
		}
		pub, err := formats.ImportPublicKey(data, formats.JWK)
		if err != nil {
			t.Fatalf("ImportPublicKey(%s): %v", alg, err)
		}
		if pub.KeyID() != kp.KeyID() {
			t.Fatalf("%s: imported key ID %q, want %q", alg, pub.KeyID(), kp.KeyID())
		}
	}
}

func TestJWKFieldShape(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	data, err := formats.ExportPublicKey(kp.PublicKey(), formats.JWK)
	if err != nil {
		t.Fatalf("ExportPublicKey: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["kty"] != "OKP" || fields["crv"] != "Ed25519" {
		t.Fatalf("unexpected kty/crv: %q/%q", fields["kty"], fields["crv"])
	}
	if fields["kid"] != kp.KeyID() {
		t.Fatalf("kid %q, want %q", fields["kid"], kp.KeyID())
	}
	if _, ok := fields["d"]; ok {
		t.Fatal("public JWK leaks private component d")
	}

	secp := mustKeyPair(t, crypto.Secp256k1)
	data, err = formats.ExportPublicKey(secp.PublicKey(), formats.JWK)
	if err != nil {
		t.Fatalf("ExportPublicKey(secp256k1): %v", err)
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["kty"] != "EC" || fields["crv"] != "secp256k1" {
		t.Fatalf("unexpected kty/crv: %q/%q", fields["kty"], fields["crv"])
	}
	if fields["x"] == "" || fields["y"] == "" {
		t.Fatal("EC JWK missing coordinates")
	}
}

func TestJWKKeyPairRoundTrip(t *testing.T) {
	for _, alg := range []crypto.Algorithm{crypto.Ed25519, crypto.Secp256k1} {
		kp := mustKeyPair(t, alg)
		data, err := formats.ExportKeyPair(kp, formats.JWK)
		if err != nil {
			t.Fatalf("ExportKeyPair(%s): %v", alg, err)
		}
		imported, err := formats.ImportKeyPair(data, formats.JWK)
		if err != nil {
			t.Fatalf("ImportKeyPair(%s): %v", alg, err)
		}
		msg := []byte("format round trip")
		sig, err := imported.Sign(msg)
		if err != nil {
			t.Fatalf("Sign(%s): %v", alg, err)
		}
		if err := kp.Verify(msg, sig); err != nil {
			t.Fatalf("Verify(%s): %v", alg, err)
		}
	}
}

func TestJWKImportWithoutPrivateComponent(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	data, err := formats.ExportPublicKey(kp.PublicKey(), formats.JWK)
	if err != nil {
		t.Fatalf("ExportPublicKey: %v", err)
	}
	if _, err := formats.ImportKeyPair(data, formats.JWK); !errors.Is(err, crypto.ErrMalformed) {
		t.Fatalf("ImportKeyPair of public JWK: want ErrMalformed, got %v", err)
	}
}

func TestPEMPublicKeyRoundTrip(t *testing.T) {
	for _, alg := range []crypto.Algorithm{crypto.Ed25519, crypto.Secp256k1} {
		kp := mustKeyPair(t, alg)
		data, err := formats.ExportPublicKey(kp.PublicKey(), formats.PEM)
		if err != nil {
			t.Fatalf("ExportPublicKey(%s): %v", alg, err)
		}
		if !strings.Contains(string(data), "BEGIN PUBLIC KEY") {
			t.Fatalf("%s: missing PUBLIC KEY block:\n%s", alg, data)
		}
		pub, err := formats.ImportPublicKey(data, formats.PEM)
		if err != nil {
			t.Fatalf("ImportPublicKey(%s): %v", alg, err)
		}
		if pub.Algorithm() != alg {
			t.Fatalf("imported algorithm %s, want %s", pub.Algorithm(), alg)
		}
		if pub.KeyID() != kp.KeyID() {
			t.Fatalf("%s: imported key ID %q, want %q", alg, pub.KeyID(), kp.KeyID())
		}
	}
}

func TestPEMKeyPairRoundTrip(t *testing.T) {
	for _, alg := range []crypto.Algorithm{crypto.Ed25519, crypto.Secp256k1} {
		kp := mustKeyPair(t, alg)
		data, err := formats.ExportKeyPair(kp, formats.PEM)
		if err != nil {
			t.Fatalf("ExportKeyPair(%s): %v", alg, err)
		}
		imported, err := formats.ImportKeyPair(data, formats.PEM)
		if err != nil {
			t.Fatalf("ImportKeyPair(%s): %v", alg, err)
		}
		if imported.KeyID() != kp.KeyID() {
			t.Fatalf("%s: imported key ID %q, want %q", alg, imported.KeyID(), kp.KeyID())
		}
	}
}

func TestPEMBlockTypes(t *testing.T) {
	ed := mustKeyPair(t, crypto.Ed25519)
	data, err := formats.ExportKeyPair(ed, formats.PEM)
	if err != nil {
		t.Fatalf("ExportKeyPair: %v", err)
	}
	if !strings.Contains(string(data), "BEGIN PRIVATE KEY") {
		t.Fatalf("ed25519 pair not in PRIVATE KEY block:\n%s", data)
	}

	secp := mustKeyPair(t, crypto.Secp256k1)
	data, err = formats.ExportKeyPair(secp, formats.PEM)
	if err != nil {
		t.Fatalf("ExportKeyPair: %v", err)
	}
	if !strings.Contains(string(data), "BEGIN EC PRIVATE KEY") {
		t.Fatalf("secp256k1 pair not in EC PRIVATE KEY block:\n%s", data)
	}
}

func TestImportGarbage(t *testing.T) {
	for _, f := range []formats.Format{formats.JWK, formats.PEM} {
		if _, err := formats.ImportPublicKey([]byte("not a key"), f); !errors.Is(err, crypto.ErrMalformed) {
			t.Fatalf("%s: want ErrMalformed, got %v", f, err)
		}
		if _, err := formats.ImportKeyPair([]byte("not a key"), f); !errors.Is(err, crypto.ErrMalformed) {
			t.Fatalf("%s: want ErrMalformed, got %v", f, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := formats.ParseFormat("jwk"); err != nil || f != formats.JWK {
		t.Fatalf("ParseFormat(jwk) = %v, %v", f, err)
	}
	if f, err := formats.ParseFormat("pem"); err != nil || f != formats.PEM {
		t.Fatalf("ParseFormat(pem) = %v, %v", f, err)
	}
	if _, err := formats.ParseFormat("der"); !errors.Is(err, crypto.ErrInvalidArgument) {
		t.Fatalf("ParseFormat(der): want ErrInvalidArgument, got %v", err)
	}
}
