package httpsig

import "strings"

// Component identifies a piece of the message covered by a signature:
// either a derived component ("@"-prefixed) or a lower-cased header name.
type Component string

// Derived components defined by RFC 9421.
const (
	Method        Component = "@method"
	TargetURI     Component = "@target-uri"
	Authority     Component = "@authority"
	Scheme        Component = "@scheme"
	RequestTarget Component = "@request-target"
	Path          Component = "@path"
	Query         Component = "@query"
	Status        Component = "@status"
)

// Header returns the component for an HTTP header field.
func Header(name string) Component {
	return Component(strings.ToLower(name))
}

// derived reports whether c is a derived component.
func (c Component) derived() bool {
	return strings.HasPrefix(string(c), "@")
}

// parseComponent maps a quoted identifier from a signature-input string
// back to a Component.
func parseComponent(id string) (Component, bool) {
	switch Component(id) {
	case Method, TargetURI, Authority, Scheme, RequestTarget, Path, Query, Status:
		return Component(id), true
	}
	if strings.HasPrefix(id, "@") {
		// Unknown derived component.
		return "", false
	}
	return Header(id), true
}
