package httpsig

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"sagecrypto/crypto"
)

// label identifies the single signature this implementation manages per
// message.
const label = "sig1"

// defaultTTL is how long emitted signatures stay valid.
const defaultTTL = 5 * time.Minute

// Signer attaches RFC 9421 signatures to HTTP messages.
type Signer struct {
	kp         *crypto.KeyPair
	components []Component
	ttl        time.Duration
}

// NewSigner returns a signer covering @method, @path and @authority for
// requests, with a five-minute validity window.
func NewSigner(kp *crypto.KeyPair) *Signer {
	return &Signer{
		kp:         kp,
		components: []Component{Method, Path, Authority},
		ttl:        defaultTTL,
	}
}

// WithComponents replaces the request components to cover.
func (s *Signer) WithComponents(comps ...Component) *Signer {
	s.components = comps
	return s
}

// WithTTL sets the validity window for emitted signatures.
func (s *Signer) WithTTL(ttl time.Duration) *Signer {
	s.ttl = ttl
	return s
}

// SignRequest canonicalizes the configured components, signs the base and
// sets the Signature-Input and Signature headers in place.
func (s *Signer) SignRequest(req *http.Request) error {
	vals, err := canonicalizeRequest(req, s.components)
	if err != nil {
		return err
	}
	return s.attach(req.Header, s.components, vals)
}

// SignResponse signs @status and content-type of a response.
func (s *Signer) SignResponse(resp *http.Response) error {
	comps := []Component{Status, Header("content-type")}
	vals, err := canonicalizeResponse(resp, comps)
	if err != nil {
		return err
	}
	return s.attach(resp.Header, comps, vals)
}

func (s *Signer) attach(h http.Header, comps []Component, vals []componentValue) error {
	now := time.Now().Unix()
	params := Params{
		KeyID:   s.kp.KeyID(),
		Alg:     algorithmIdentifier(s.kp.Algorithm()),
		Created: now,
		Expires: now + int64(s.ttl/time.Second),
	}
	sigInput := signatureInput(comps, params)

	sig, err := s.kp.Sign([]byte(signatureBase(vals, sigInput)))
	if err != nil {
		return err
	}

	h.Set("Signature-Input", fmt.Sprintf("%s=%s", label, sigInput))
	h.Set("Signature", fmt.Sprintf("%s=:%s:", label, sig.Base64()))
	return nil
}

// signatureInput renders the component list and parameters, e.g.
// ("@method" "@path");keyid="...";created=...
func signatureInput(comps []Component, params Params) string {
	ids := make([]string, len(comps))
	for i, c := range comps {
		ids[i] = fmt.Sprintf("%q", string(c))
	}
	input := "(" + strings.Join(ids, " ") + ")"
	if p := params.String(); p != "" {
		input += ";" + p
	}
	return input
}

// algorithmIdentifier maps a key algorithm to its RFC 9421 registry name.
func algorithmIdentifier(alg crypto.Algorithm) string {
	if alg == crypto.Secp256k1 {
		return "ecdsa-secp256k1-sha256"
	}
	return "ed25519"
}
