package obofoundry

import (
	"errors"
	"net/url"
)

// ErrRelativeURL is the cause recorded when a URL-typed field holds a
// reference without a scheme.
var ErrRelativeURL = errors.New("relative URL without a base")

// URL is an absolute URL kept in its source spelling. Values produced by
// the decoder always satisfy ParseURL.
type URL string

// ParseURL validates s as an absolute URL (a scheme is required; opaque
// forms such as mailto: are accepted).
func ParseURL(s string) (URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		return "", &url.Error{Op: "parse", URL: s, Err: ErrRelativeURL}
	}
	return URL(s), nil
}

// MustParseURL is like ParseURL but panics on error. It is meant for
// literals in tests and fixtures.
func MustParseURL(s string) URL {
	u, err := ParseURL(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Parse returns the parsed form of u.
func (u URL) Parse() (*url.URL, error) { return url.Parse(string(u)) }

func (u URL) String() string { return string(u) }

// URLPtr returns a pointer to a URL literal, for optional fields.
func URLPtr(s string) *URL {
	u := MustParseURL(s)
	return &u
}
