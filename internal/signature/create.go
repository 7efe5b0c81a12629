package signature

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Create signs a request with (request-target), (created), (expires) and every header in headers, using the
// current time.
func Create(keyID, method, pathAndQuery string, lifetime time.Duration, headers http.Header, sign SignFunc) (*Signature, error) {
	return CreateAt(time.Now(), keyID, method, pathAndQuery, lifetime, headers, sign)
}

// CreateAt is Create with an explicit creation time. Headers are signed in sorted lowercase name order, and
// the returned signature lists them in that order after the three pseudo-headers.
func CreateAt(now time.Time, keyID, method, pathAndQuery string, lifetime time.Duration, headers http.Header, sign SignFunc) (*Signature, error) {
	created := time.Unix(now.Unix(), 0)
	expires := created.Add(lifetime.Truncate(time.Second))

	var body bytes.Buffer
	writeRequestTarget(&body, method, pathAndQuery)
	body.WriteString("\n(created): ")
	body.WriteString(strconv.FormatInt(created.Unix(), 10))
	body.WriteString("\n(expires): ")
	body.WriteString(strconv.FormatInt(expires.Unix(), 10))

	names := headerNames(headers)
	signed := make([]HeaderName, 0, len(names)+3)
	signed = append(signed, RequestTarget, Created, Expires)
	for _, name := range names {
		body.WriteByte('\n')
		writeHeader(&body, name, headers.Values(name))
		signed = append(signed, HeaderName(name))
	}

	value, err := sign(body.Bytes())
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	return &Signature{
		Algorithm: DefaultAlgorithm,
		Created:   created,
		Expires:   expires,
		Headers:   signed,
		KeyID:     keyID,
		Value:     value,
	}, nil
}

// CreateLegacy signs a request the old way, without (created) and (expires). The header set must contain a
// Date header, which then bounds the signature's validity.
func CreateLegacy(keyID, method, pathAndQuery string, headers http.Header, sign SignFunc) (*Signature, error) {
	if headers.Get("Date") == "" {
		return nil, ErrMissingDate
	}

	var body bytes.Buffer
	writeRequestTarget(&body, method, pathAndQuery)

	names := headerNames(headers)
	signed := make([]HeaderName, 0, len(names)+1)
	signed = append(signed, RequestTarget)
	for _, name := range names {
		body.WriteByte('\n')
		writeHeader(&body, name, headers.Values(name))
		signed = append(signed, HeaderName(name))
	}

	value, err := sign(body.Bytes())
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	return &Signature{
		Algorithm: DefaultAlgorithm,
		Headers:   signed,
		KeyID:     keyID,
		Value:     value,
	}, nil
}

func writeRequestTarget(b *bytes.Buffer, method, pathAndQuery string) {
	b.WriteString(string(RequestTarget))
	b.WriteString(": ")
	b.WriteString(strings.ToLower(method))
	b.WriteByte(' ')
	b.WriteString(pathAndQuery)
}

func writeHeader(b *bytes.Buffer, name string, values []string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(strings.Join(values, ", "))
}
