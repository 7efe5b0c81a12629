package signature

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Header serializes the signature into a Signature header value. Fields are written in the order headers,
// algorithm, created, expires, keyId, signature; a nil header list is written as "(created)".
func (s *Signature) Header() string {
	var b strings.Builder

	b.WriteString(`headers="`)
	if s.Headers == nil {
		b.WriteString(string(Created))
	} else {
		for i, name := range s.Headers {
			if i != 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(name))
		}
	}
	b.WriteByte('"')

	if s.Algorithm != "" {
		b.WriteString(`,algorithm="`)
		b.WriteString(s.Algorithm)
		b.WriteByte('"')
	}
	if !s.Created.IsZero() {
		b.WriteString(",created=")
		b.WriteString(strconv.FormatInt(s.Created.Unix(), 10))
	}
	if !s.Expires.IsZero() {
		b.WriteString(",expires=")
		b.WriteString(strconv.FormatInt(s.Expires.Unix(), 10))
	}
	if s.KeyID != "" {
		b.WriteString(`,keyId="`)
		b.WriteString(s.KeyID)
		b.WriteByte('"')
	}

	b.WriteString(`,signature="`)
	b.WriteString(base64.StdEncoding.EncodeToString(s.Value))
	b.WriteByte('"')
	return b.String()
}
