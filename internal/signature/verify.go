package signature

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Verify checks the signature against a request, using the current time for the expiry check.
func (s *Signature) Verify(method, pathAndQuery string, headers http.Header, verify VerifyFunc) (bool, error) {
	return s.VerifyAt(time.Now(), method, pathAndQuery, headers, verify)
}

// VerifyAt rebuilds the signing string from the signature's own header list and hands it to verify.
//
// An expired signature, a pseudo-header referenced without its value, or a signed header missing from the
// live header set all yield false with a nil error. Only errors from verify are returned.
func (s *Signature) VerifyAt(now time.Time, method, pathAndQuery string, headers http.Header, verify VerifyFunc) (bool, error) {
	if !s.Expires.IsZero() && s.Expires.Unix() < now.Unix() {
		return false, nil
	}

	data, ok := s.signingString(method, pathAndQuery, headers)
	if !ok {
		return false, nil
	}

	valid, err := verify(data, s.Value)
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	return valid, nil
}

func (s *Signature) signingString(method, pathAndQuery string, headers http.Header) ([]byte, bool) {
	var body bytes.Buffer

	if s.Headers == nil {
		if s.Created.IsZero() {
			return nil, false
		}
		writeTimestamp(&body, Created, s.Created)
		return body.Bytes(), true
	}

	for i, name := range s.Headers {
		if i != 0 {
			body.WriteByte('\n')
		}

		switch name {
		case RequestTarget:
			writeRequestTarget(&body, method, pathAndQuery)
		case Created:
			if s.Created.IsZero() {
				return nil, false
			}
			writeTimestamp(&body, Created, s.Created)
		case Expires:
			if s.Expires.IsZero() {
				return nil, false
			}
			writeTimestamp(&body, Expires, s.Expires)
		default:
			values := headers.Values(string(name))
			if len(values) == 0 {
				return nil, false
			}
			writeHeader(&body, string(name), values)
		}
	}
	return body.Bytes(), true
}

func writeTimestamp(b *bytes.Buffer, name HeaderName, t time.Time) {
	b.WriteString(string(name))
	b.WriteString(": ")
	b.WriteString(strconv.FormatInt(t.Unix(), 10))
}
