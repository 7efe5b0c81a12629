package web

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
)

// authenticate checks the request's signature, and the Digest header against body when there is one. Host is
// not part of r.Header, so it is added back before verification.
func (h *Handler) authenticate(r *http.Request, body []byte) (domain.Actor, error) {
	headers := r.Header.Clone()
	headers.Set("Host", r.Host)

	actor, err := h.gateway.Authenticate(r.Context(), r.Method, r.URL.RequestURI(), headers)
	if err != nil {
		return domain.Actor{}, err
	}

	if digest := r.Header.Get("Digest"); digest != "" {
		if err = checkDigest(digest, body); err != nil {
			return domain.Actor{}, fmt.Errorf("%w: %w", federation.ErrNotAuthenticated, err)
		}
	}
	return actor, nil
}

// checkDigest verifies the SHA-256 entry of a Digest header. Entries for other algorithms are skipped, but at
// least one SHA-256 entry must be present.
func checkDigest(header string, body []byte) error {
	sum := sha256.Sum256(body)

	for _, entry := range strings.Split(header, ",") {
		alg, value, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || !strings.EqualFold(alg, "SHA-256") {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return fmt.Errorf("malformed digest: %w", err)
		}
		if !bytes.Equal(decoded, sum[:]) {
			return errors.New("digest does not match the body")
		}
		return nil
	}
	return fmt.Errorf("no SHA-256 digest in %q", header)
}
