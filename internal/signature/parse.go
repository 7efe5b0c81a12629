package signature

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse parses the value of a Signature header.
func Parse(value string) (*Signature, error) {
	for i := 0; i < len(value); i++ {
		if c := value[i]; (c < 0x20 && c != '\t') || c > 0x7e {
			return nil, ErrInvalidCharacters
		}
	}

	var (
		sig      Signature
		hasValue bool
	)
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		key, raw, ok := strings.Cut(field, "=")
		if !ok {
			return nil, ErrMissingEquals
		}
		v := unquote(raw)

		switch key {
		case "algorithm":
			if !isToken(v) {
				return nil, ErrInvalidCharacters
			}
			sig.Algorithm = v
		case "created":
			t, err := parseTimestamp(v)
			if err != nil {
				return nil, err
			}
			sig.Created = t
		case "expires":
			t, err := parseTimestamp(v)
			if err != nil {
				return nil, err
			}
			sig.Expires = t
		case "headers":
			names := strings.Split(v, " ")
			sig.Headers = make([]HeaderName, 0, len(names))
			for _, n := range names {
				h, err := parseHeaderName(n)
				if err != nil {
					return nil, err
				}
				sig.Headers = append(sig.Headers, h)
			}
		case "keyId":
			sig.KeyID = v
		case "signature":
			b, err := base64.StdEncoding.DecodeString(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBase64, err)
			}
			sig.Value = b
			hasValue = true
		}
	}

	if !hasValue {
		return nil, ErrMissingSignature
	}
	return &sig, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func parseTimestamp(s string) (time.Time, error) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrNumber, err)
	}
	return time.Unix(int64(n), 0), nil
}
