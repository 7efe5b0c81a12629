// Package federation holds the ActivityPub wire documents accepted and emitted by the server, along with the
// errors shared by every federation component.
package federation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidForm is returned for malformed input: bad signature syntax, malformed actor or activity
	// payloads, invalid URLs.
	ErrInvalidForm = errors.New("invalid form")
	// ErrFetch covers every outbound failure, including timeouts and non-success statuses.
	ErrFetch = errors.New("fetch failed")
	// ErrNotAuthenticated is the only error the inbox exposes for a rejected identity or signature.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnsupported is returned for activity kinds the inbox does not process.
	ErrUnsupported            = errors.New("unsupported activity")
	ErrMissingProperty        = fmt.Errorf("%w: missing property", ErrInvalidForm)
	ErrUnprocessablePropValue = fmt.Errorf("%w: unprocessable property value", ErrInvalidForm)
)
