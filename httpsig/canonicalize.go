package httpsig

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sagecrypto/crypto"
)

// componentValue is one canonicalized line of the signature base.
type componentValue struct {
	name  string
	value string
}

// canonicalizeRequest resolves each component against a request.
func canonicalizeRequest(req *http.Request, comps []Component) ([]componentValue, error) {
	vals := make([]componentValue, 0, len(comps))
	for _, c := range comps {
		var value string
		switch c {
		case Method:
			value = req.Method
		case TargetURI:
			value = req.URL.String()
		case Authority:
			authority := req.URL.Host
			if authority == "" {
				authority = req.Host
			}
			if authority == "" {
				return nil, errors.Wrap(crypto.ErrInvalidArgument, "request has no authority")
			}
			// RFC 9421 2.2.3: the host is lowercased before inclusion.
			value = strings.ToLower(authority)
		case Scheme:
			if req.URL.Scheme == "" {
				return nil, errors.Wrap(crypto.ErrInvalidArgument, "request has no scheme")
			}
			value = req.URL.Scheme
		case RequestTarget:
			value = req.URL.RequestURI()
		case Path:
			value = req.URL.Path
		case Query:
			value = "?" + req.URL.RawQuery
		case Status:
			return nil, errors.Wrap(crypto.ErrInvalidArgument, "@status is not valid for requests")
		default:
			v, err := headerValue(req.Header, string(c))
			if err != nil {
				return nil, err
			}
			value = v
		}
		vals = append(vals, componentValue{name: string(c), value: value})
	}
	return vals, nil
}

// canonicalizeResponse resolves each component against a response. Only
// @status and header components are meaningful for responses.
func canonicalizeResponse(resp *http.Response, comps []Component) ([]componentValue, error) {
	vals := make([]componentValue, 0, len(comps))
	for _, c := range comps {
		var value string
		switch {
		case c == Status:
			value = strconv.Itoa(resp.StatusCode)
		case c.derived():
			return nil, errors.Wrapf(crypto.ErrInvalidArgument, "%s is not valid for responses", c)
		default:
			v, err := headerValue(resp.Header, string(c))
			if err != nil {
				return nil, err
			}
			value = v
		}
		vals = append(vals, componentValue{name: string(c), value: value})
	}
	return vals, nil
}

// headerValue joins all values of a header field with ", " per RFC 9421.
func headerValue(h http.Header, name string) (string, error) {
	values := h.Values(name)
	if len(values) == 0 {
		return "", errors.Wrapf(crypto.ErrInvalidArgument, "header %q not present", name)
	}
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return strings.Join(trimmed, ", "), nil
}

// signatureBase assembles the string that is actually signed.
func signatureBase(vals []componentValue, sigInput string) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%q: %s\n", v.name, v.value)
	}
	fmt.Fprintf(&b, "%q: %s", "@signature-params", sigInput)
	return b.String()
}
