package signature

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

var key *rsa.PrivateKey

var now = time.Unix(1700000000, 0)

const keyID = "https://remote.example/users/alice#main-key"

func TestMain(m *testing.M) {
	var err error
	key, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatal().Err(err).Msg("tests setup failure")
		return
	}

	os.Exit(m.Run())
}

func requestHeaders() http.Header {
	h := http.Header{}
	h.Set("Host", "local.example")
	h.Set("Date", now.UTC().Format(http.TimeFormat))
	h.Set("Digest", "SHA-256=47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=")
	h.Add("Accept", "application/activity+json")
	h.Add("Accept", "application/ld+json")
	return h
}

func mustVerifier(t *testing.T) VerifyFunc {
	t.Helper()
	verify, err := VerifierFor(&key.PublicKey)
	require.NoError(t, err)
	return verify
}

func TestRoundTrip(t *testing.T) {
	headers := requestHeaders()
	sig, err := CreateAt(now, keyID, http.MethodPost, "/inbox?x=1", time.Hour, headers, SignerRSA(key))
	require.NoError(t, err)

	require.Equal(t, []HeaderName{RequestTarget, Created, Expires, "accept", "date", "digest", "host"}, sig.Headers)
	require.Equal(t, now.Add(time.Hour).Unix(), sig.Expires.Unix())

	parsed, err := Parse(sig.Header())
	require.NoError(t, err)
	require.Equal(t, sig.KeyID, parsed.KeyID)
	require.Equal(t, sig.Algorithm, parsed.Algorithm)
	require.Equal(t, sig.Headers, parsed.Headers)
	require.Equal(t, sig.Value, parsed.Value)

	ok, err := parsed.VerifyAt(now.Add(time.Minute), http.MethodPost, "/inbox?x=1", headers, mustVerifier(t))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRejects(t *testing.T) {
	sig, err := CreateAt(now, keyID, http.MethodPost, "/inbox", time.Hour, requestHeaders(), SignerRSA(key))
	require.NoError(t, err)

	cases := []struct {
		name    string
		at      time.Time
		method  string
		path    string
		headers func() http.Header
	}{
		{
			name:    "expired",
			at:      now.Add(2 * time.Hour),
			method:  http.MethodPost,
			path:    "/inbox",
			headers: requestHeaders,
		},
		{
			name:   "altered header",
			at:     now,
			method: http.MethodPost,
			path:   "/inbox",
			headers: func() http.Header {
				h := requestHeaders()
				h.Set("Digest", "SHA-256=tampered")
				return h
			},
		},
		{
			name:   "missing header",
			at:     now,
			method: http.MethodPost,
			path:   "/inbox",
			headers: func() http.Header {
				h := requestHeaders()
				h.Del("Host")
				return h
			},
		},
		{
			name:    "different path",
			at:      now,
			method:  http.MethodPost,
			path:    "/users/bob/inbox",
			headers: requestHeaders,
		},
		{
			name:    "different method",
			at:      now,
			method:  http.MethodGet,
			path:    "/inbox",
			headers: requestHeaders,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, err := sig.VerifyAt(c.at, c.method, c.path, c.headers(), mustVerifier(t))
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestVerifyExpiredNeverCallsVerifier(t *testing.T) {
	sig := &Signature{
		Created: now.Add(-2 * time.Hour),
		Expires: now.Add(-time.Hour),
		Headers: []HeaderName{Created},
		Value:   []byte("sig"),
	}

	ok, err := sig.VerifyAt(now, http.MethodPost, "/inbox", http.Header{}, func(data, sig []byte) (bool, error) {
		t.Fatal("verifier called for an expired signature")
		return true, nil
	})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyPseudoHeaders(t *testing.T) {
	accept := func(data, sig []byte) (bool, error) { return true, nil }

	t.Run("absent header list covers created only", func(t *testing.T) {
		sig := &Signature{Created: now, Value: []byte("x")}
		var signed []byte
		ok, err := sig.VerifyAt(now, http.MethodGet, "/", nil, func(data, _ []byte) (bool, error) {
			signed = data
			return true, nil
		})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "(created): 1700000000", string(signed))
	})

	t.Run("absent header list without created", func(t *testing.T) {
		sig := &Signature{Value: []byte("x")}
		ok, err := sig.VerifyAt(now, http.MethodGet, "/", nil, accept)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("expires referenced but absent", func(t *testing.T) {
		sig := &Signature{Headers: []HeaderName{RequestTarget, Expires}, Value: []byte("x")}
		ok, err := sig.VerifyAt(now, http.MethodGet, "/", nil, accept)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestVerifyCallbackError(t *testing.T) {
	boom := errors.New("boom")
	sig := &Signature{Created: now, Value: []byte("x")}
	_, err := sig.VerifyAt(now, http.MethodGet, "/", nil, func(data, sig []byte) (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestCreateSignError(t *testing.T) {
	boom := errors.New("no key")
	_, err := Create(keyID, http.MethodGet, "/", time.Minute, http.Header{}, func([]byte) ([]byte, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestCreateLegacy(t *testing.T) {
	_, err := CreateLegacy(keyID, http.MethodGet, "/users/alice", http.Header{"Host": {"local.example"}}, SignerRSA(key))
	require.ErrorIs(t, err, ErrMissingDate)

	headers := requestHeaders()
	sig, err := CreateLegacy(keyID, http.MethodGet, "/users/alice", headers, SignerRSA(key))
	require.NoError(t, err)
	require.True(t, sig.Created.IsZero())
	require.True(t, sig.Expires.IsZero())
	require.Equal(t, RequestTarget, sig.Headers[0])

	parsed, err := Parse(sig.Header())
	require.NoError(t, err)
	ok, err := parsed.VerifyAt(now.Add(365*24*time.Hour), http.MethodGet, "/users/alice", headers, mustVerifier(t))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		header string
		err    error
		check  func(t *testing.T, s *Signature)
	}{
		{
			name:   "mastodon style",
			header: `keyId="https://remote.example/users/alice#main-key",algorithm="rsa-sha256",headers="(request-target) host date digest",signature="c2lnbmF0dXJl"`,
			check: func(t *testing.T, s *Signature) {
				require.Equal(t, "https://remote.example/users/alice#main-key", s.KeyID)
				require.Equal(t, "rsa-sha256", s.Algorithm)
				require.Equal(t, []HeaderName{RequestTarget, "host", "date", "digest"}, s.Headers)
				require.Equal(t, []byte("signature"), s.Value)
				require.True(t, s.Created.IsZero())
			},
		},
		{
			name:   "spaces and unquoted numbers",
			header: `keyId="k", created=1700000000, expires=1700003600, headers="(created) (expires) Host", signature="c2ln"`,
			check: func(t *testing.T, s *Signature) {
				require.Equal(t, int64(1700000000), s.Created.Unix())
				require.Equal(t, int64(1700003600), s.Expires.Unix())
				require.Equal(t, []HeaderName{Created, Expires, "host"}, s.Headers)
			},
		},
		{
			name:   "no headers",
			header: `signature="c2ln"`,
			check: func(t *testing.T, s *Signature) {
				require.Nil(t, s.Headers)
			},
		},
		{name: "missing signature", header: `keyId="k",headers="date"`, err: ErrMissingSignature},
		{name: "missing equals", header: `keyId="k",bogus,signature="c2ln"`, err: ErrMissingEquals},
		{name: "bad number", header: `created=soon,signature="c2ln"`, err: ErrNumber},
		{name: "negative number", header: `expires=-1,signature="c2ln"`, err: ErrNumber},
		{name: "bad base64", header: `signature="***"`, err: ErrBase64},
		{name: "control character", header: "keyId=\"k\x01\",signature=\"c2ln\"", err: ErrInvalidCharacters},
		{name: "bad header name", header: `headers="date ho(st",signature="c2ln"`, err: ErrInvalidCharacters},
		{name: "bad algorithm", header: `algorithm="rsa sha256",signature="c2ln"`, err: ErrInvalidCharacters},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Parse(c.header)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			c.check(t, s)
		})
	}
}

func TestHeader(t *testing.T) {
	sig := &Signature{
		Algorithm: "hs2019",
		Created:   now,
		Expires:   now.Add(time.Hour),
		Headers:   []HeaderName{RequestTarget, Created, Expires, "host"},
		KeyID:     keyID,
		Value:     []byte("signature"),
	}
	require.Equal(t,
		`headers="(request-target) (created) (expires) host",algorithm="hs2019",created=1700000000,expires=1700003600,keyId="https://remote.example/users/alice#main-key",signature="c2lnbmF0dXJl"`,
		sig.Header(),
	)

	bare := &Signature{Value: []byte("signature")}
	require.Equal(t, `headers="(created)",signature="c2lnbmF0dXJl"`, bare.Header())
}

func TestVerifierForUnsupportedKey(t *testing.T) {
	_, err := VerifierFor("not a key")
	require.ErrorIs(t, err, ErrUnsupportedKey)
}
