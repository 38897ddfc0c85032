package httpsig

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"sagecrypto/crypto"
)

// maxSkew is the tolerated clock drift for the created parameter.
const maxSkew = 5 * time.Minute

// Verifier checks RFC 9421 signatures on HTTP messages.
type Verifier struct {
	pub crypto.PublicKey
}

// NewVerifier returns a verifier for the given public key.
func NewVerifier(pub crypto.PublicKey) *Verifier {
	return &Verifier{pub: pub}
}

// VerifyRequest checks the sig1 signature on a request.
func (v *Verifier) VerifyRequest(req *http.Request) error {
	sigB64, sigInput, err := signatureHeaders(req.Header)
	if err != nil {
		return err
	}
	comps, params, err := parseSignatureInput(sigInput)
	if err != nil {
		return err
	}
	if err := v.checkParams(params); err != nil {
		return err
	}
	vals, err := canonicalizeRequest(req, comps)
	if err != nil {
		return err
	}
	return v.check(vals, sigInput, sigB64)
}

// VerifyResponse checks the sig1 signature on a response.
func (v *Verifier) VerifyResponse(resp *http.Response) error {
	sigB64, sigInput, err := signatureHeaders(resp.Header)
	if err != nil {
		return err
	}
	comps, params, err := parseSignatureInput(sigInput)
	if err != nil {
		return err
	}
	if err := v.checkParams(params); err != nil {
		return err
	}
	vals, err := canonicalizeResponse(resp, comps)
	if err != nil {
		return err
	}
	return v.check(vals, sigInput, sigB64)
}

func (v *Verifier) check(vals []componentValue, sigInput, sigB64 string) error {
	raw, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return errors.Wrapf(crypto.ErrMalformed, "signature base64: %v", err)
	}
	sig, err := crypto.SignatureFromBytes(v.pub.Algorithm(), raw)
	if err != nil {
		return err
	}
	return v.pub.Verify([]byte(signatureBase(vals, sigInput)), sig)
}

// checkParams rejects expired or future-dated signatures and keyid
// mismatches before any cryptographic work.
func (v *Verifier) checkParams(params Params) error {
	now := time.Now().Unix()
	if params.Created != 0 && params.Created > now+int64(maxSkew/time.Second) {
		return errors.Wrap(crypto.ErrVerificationFailed, "signature created in the future")
	}
	if params.Expires != 0 && params.Expires < now {
		return errors.Wrap(crypto.ErrVerificationFailed, "signature expired")
	}
	if params.KeyID != "" && params.KeyID != v.pub.KeyID() {
		return errors.Wrap(crypto.ErrVerificationFailed, "keyid does not match public key")
	}
	return nil
}

// signatureHeaders pulls the sig1 entries out of the Signature and
// Signature-Input headers.
func signatureHeaders(h http.Header) (sigB64, sigInput string, err error) {
	sig := h.Get("Signature")
	if sig == "" {
		return "", "", errors.Wrap(crypto.ErrMalformed, "missing Signature header")
	}
	input := h.Get("Signature-Input")
	if input == "" {
		return "", "", errors.Wrap(crypto.ErrMalformed, "missing Signature-Input header")
	}

	sigB64, ok := strings.CutPrefix(sig, label+"=:")
	if !ok {
		return "", "", errors.Wrap(crypto.ErrMalformed, "unexpected Signature header format")
	}
	sigB64, ok = strings.CutSuffix(sigB64, ":")
	if !ok {
		return "", "", errors.Wrap(crypto.ErrMalformed, "unexpected Signature header format")
	}

	sigInput, ok = strings.CutPrefix(input, label+"=")
	if !ok {
		return "", "", errors.Wrap(crypto.ErrMalformed, "unexpected Signature-Input header format")
	}
	return sigB64, sigInput, nil
}

// parseSignatureInput splits a signature-input string into its component
// list and parameters.
func parseSignatureInput(input string) ([]Component, Params, error) {
	if !strings.HasPrefix(input, "(") {
		return nil, Params{}, errors.Wrap(crypto.ErrMalformed, "signature input must start with a component list")
	}
	end := strings.Index(input, ")")
	if end < 0 {
		return nil, Params{}, errors.Wrap(crypto.ErrMalformed, "unterminated component list")
	}

	var comps []Component
	for _, id := range strings.Fields(input[1:end]) {
		c, ok := parseComponent(strings.Trim(id, `"`))
		if !ok {
			return nil, Params{}, errors.Wrapf(crypto.ErrMalformed, "unsupported component %s", id)
		}
		comps = append(comps, c)
	}

	var params Params
	for _, part := range strings.Split(input[end+1:], ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, Params{}, errors.Wrapf(crypto.ErrMalformed, "bad signature parameter %q", part)
		}
		switch key {
		case "keyid":
			params.KeyID = strings.Trim(value, `"`)
		case "alg":
			params.Alg = strings.Trim(value, `"`)
		case "nonce":
			params.Nonce = strings.Trim(value, `"`)
		case "tag":
			params.Tag = strings.Trim(value, `"`)
		case "created":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, Params{}, errors.Wrapf(crypto.ErrMalformed, "bad created value %q", value)
			}
			params.Created = n
		case "expires":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, Params{}, errors.Wrapf(crypto.ErrMalformed, "bad expires value %q", value)
			}
			params.Expires = n
		}
	}
	return comps, params, nil
}
