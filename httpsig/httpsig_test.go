package httpsig_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"sagecrypto"
	"sagecrypto/crypto"
	"sagecrypto/httpsig"
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

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://api.example.com/v1/items?q=1", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignVerifyRequest(t *testing.T) {
	for _, alg := range []crypto.Algorithm{crypto.Ed25519, crypto.Secp256k1} {
		kp := mustKeyPair(t, alg)
		req := newRequest(t)
		if err := httpsig.NewSigner(kp).SignRequest(req); err != nil {
			t.Fatalf("SignRequest(%s): %v", alg, err)
		}
		if req.Header.Get("Signature") == "" || req.Header.Get("Signature-Input") == "" {
			t.Fatalf("%s: signature headers not set", alg)
		}
		if err := httpsig.NewVerifier(kp.PublicKey()).VerifyRequest(req); err != nil {
			t.Fatalf("VerifyRequest(%s): %v", alg, err)
		}
	}
}

func TestSignVerifyRequestWithHeaders(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	req := newRequest(t)
	signer := httpsig.NewSigner(kp).WithComponents(
		httpsig.Method,
		httpsig.RequestTarget,
		httpsig.Authority,
		httpsig.Header("Content-Type"),
	)
	if err := signer.SignRequest(req); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	if err := httpsig.NewVerifier(kp.PublicKey()).VerifyRequest(req); err != nil {
		t.Fatalf("VerifyRequest: %v", err)
	}
}

func TestVerifyTamperedComponent(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	req := newRequest(t)
	if err := httpsig.NewSigner(kp).SignRequest(req); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	req.Method = http.MethodDelete

	err := httpsig.NewVerifier(kp.PublicKey()).VerifyRequest(req)
	if !errors.Is(err, crypto.ErrVerificationFailed) {
		t.Fatalf("tampered method: want ErrVerificationFailed, got %v", err)
	}
}

func TestVerifyAuthorityCaseInsensitive(t *testing.T) {
	// Host names are case-insensitive and the authority component is
	// lowercased in the signature base, so a peer that normalizes the
	// host must still verify.
	kp := mustKeyPair(t, crypto.Ed25519)
	req, err := http.NewRequest(http.MethodGet, "https://API.Example.COM/v1/items", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if err := httpsig.NewSigner(kp).SignRequest(req); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	req.URL.Host = "api.example.com"
	if err := httpsig.NewVerifier(kp.PublicKey()).VerifyRequest(req); err != nil {
		t.Fatalf("VerifyRequest with normalized host: %v", err)
	}
}

func TestVerifyExpiredSignature(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	req := newRequest(t)
	if err := httpsig.NewSigner(kp).WithTTL(-time.Minute).SignRequest(req); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	err := httpsig.NewVerifier(kp.PublicKey()).VerifyRequest(req)
	if !errors.Is(err, crypto.ErrVerificationFailed) {
		t.Fatalf("expired signature: want ErrVerificationFailed, got %v", err)
	}
}

func TestVerifyKeyIDMismatch(t *testing.T) {
	signing := mustKeyPair(t, crypto.Ed25519)
	other := mustKeyPair(t, crypto.Ed25519)
	req := newRequest(t)
	if err := httpsig.NewSigner(signing).SignRequest(req); err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	err := httpsig.NewVerifier(other.PublicKey()).VerifyRequest(req)
	if !errors.Is(err, crypto.ErrVerificationFailed) {
		t.Fatalf("wrong key: want ErrVerificationFailed, got %v", err)
	}
}

func TestVerifyMissingHeaders(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	req := newRequest(t)
	err := httpsig.NewVerifier(kp.PublicKey()).VerifyRequest(req)
	if !errors.Is(err, crypto.ErrMalformed) {
		t.Fatalf("unsigned request: want ErrMalformed, got %v", err)
	}
}

func TestSignVerifyResponse(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
	if err := httpsig.NewSigner(kp).SignResponse(resp); err != nil {
		t.Fatalf("SignResponse: %v", err)
	}
	if err := httpsig.NewVerifier(kp.PublicKey()).VerifyResponse(resp); err != nil {
		t.Fatalf("VerifyResponse: %v", err)
	}

	resp.StatusCode = http.StatusInternalServerError
	err := httpsig.NewVerifier(kp.PublicKey()).VerifyResponse(resp)
	if !errors.Is(err, crypto.ErrVerificationFailed) {
		t.Fatalf("tampered status: want ErrVerificationFailed, got %v", err)
	}
}

func TestSignRequestMissingHeaderComponent(t *testing.T) {
	kp := mustKeyPair(t, crypto.Ed25519)
	req := newRequest(t)
	req.Header.Del("Content-Type")
	signer := httpsig.NewSigner(kp).WithComponents(httpsig.Method, httpsig.Header("Content-Type"))
	if err := signer.SignRequest(req); !errors.Is(err, crypto.ErrInvalidArgument) {
		t.Fatalf("missing header: want ErrInvalidArgument, got %v", err)
	}
}
