package httpsig

import (
	"fmt"
	"strings"
)

// Params are the signature parameters serialized after the component
// list in the signature-input string.
type Params struct {
	KeyID   string
	Alg     string
	Created int64
	Expires int64
	Nonce   string
	Tag     string
}

// String serializes the present parameters in RFC 9421 order.
func (p Params) String() string {
	var parts []string
	if p.KeyID != "" {
		parts = append(parts, fmt.Sprintf("keyid=%q", p.KeyID))
	}
	if p.Alg != "" {
		parts = append(parts, fmt.Sprintf("alg=%q", p.Alg))
	}
	if p.Created != 0 {
		parts = append(parts, fmt.Sprintf("created=%d", p.Created))
	}
	if p.Expires != 0 {
		parts = append(parts, fmt.Sprintf("expires=%d", p.Expires))
	}
	if p.Nonce != "" {
		parts = append(parts, fmt.Sprintf("nonce=%q", p.Nonce))
	}
	if p.Tag != "" {
		parts = append(parts, fmt.Sprintf("tag=%q", p.Tag))
	}
	return strings.Join(parts, ";")
}
