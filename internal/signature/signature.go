// Package signature parses, creates and verifies HTTP Message Signatures (the draft-cavage scheme used by
// ActivityPub servers). Signing and verification are delegated to caller supplied callbacks so the package
// knows nothing about keys or algorithms.
package signature

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"
)

// Errors returned by Parse.
var (
	ErrMissingEquals     = errors.New("parameter pair did not contain =")
	ErrMissingSignature  = errors.New("no signature found in parameters")
	ErrInvalidCharacters = errors.New("parameter contained invalid characters")
	ErrNumber            = errors.New("failed to parse number")
	ErrBase64            = errors.New("failed to parse signature bytes")
)

// ErrMissingDate is returned by CreateLegacy when the header set has no Date header.
var ErrMissingDate = errors.New("legacy signatures must contain a Date header")

// DefaultAlgorithm is the algorithm tag emitted by Create and CreateLegacy.
const DefaultAlgorithm = "hs2019"

// HeaderName is the name of a signed header. Besides normal header names, which are always lowercase, it
// may be one of the three pseudo-headers.
type HeaderName string

const (
	RequestTarget HeaderName = "(request-target)"
	Created       HeaderName = "(created)"
	Expires       HeaderName = "(expires)"
)

// IsPseudo reports whether h is one of (request-target), (created) or (expires).
func (h HeaderName) IsPseudo() bool {
	return h == RequestTarget || h == Created || h == Expires
}

// SignFunc signs the canonical signing string.
type SignFunc func(data []byte) ([]byte, error)

// VerifyFunc checks sig against the canonical signing string. A false result with a nil error means the
// signature simply does not match.
type VerifyFunc func(data, sig []byte) (bool, error)

// Signature is a parsed or freshly created Signature header.
type Signature struct {
	// Algorithm is the algorithm tag; empty when absent.
	Algorithm string
	// Created and Expires are zero when absent.
	Created time.Time
	Expires time.Time
	// Headers lists the signed headers in signing order. A nil slice means the header list was absent, in
	// which case only (created) is covered.
	Headers []HeaderName
	KeyID   string
	// Value holds the raw signature bytes.
	Value []byte
}

func parseHeaderName(s string) (HeaderName, error) {
	switch h := HeaderName(s); h {
	case RequestTarget, Created, Expires:
		return h, nil
	}
	if !isToken(s) {
		return "", ErrInvalidCharacters
	}
	return HeaderName(strings.ToLower(s)), nil
}

// isToken reports whether s is a non-empty RFC 7230 token.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0:
		default:
			return false
		}
	}
	return true
}

// headerNames returns the names present in h, lowercased and sorted.
func headerNames(h http.Header) []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, strings.ToLower(name))
	}
	slices.Sort(names)
	return slices.Compact(names)
}
