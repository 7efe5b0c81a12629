package gateway

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
	mock_db "github.com/sidereusnuntius/commune/internal/mocks"
	"github.com/sidereusnuntius/commune/internal/signature"
	"github.com/sidereusnuntius/commune/internal/utils"
	"github.com/sidereusnuntius/commune/internal/webfinger"
	"go.uber.org/mock/gomock"
)

type testKey struct {
	priv *rsa.PrivateKey
	pem  string
}

var (
	keysOnce sync.Once
	keys     [2]testKey
)

// testKeys returns two distinct key pairs, generated once per test binary.
func testKeys(t *testing.T) [2]testKey {
	t.Helper()
	keysOnce.Do(func() {
		for i := range keys {
			pub, priv, err := utils.GenerateKeysPem(2048)
			if err != nil {
				panic(err)
			}
			key, err := utils.ParsePrivateKeyPem(priv)
			if err != nil {
				panic(err)
			}
			keys[i] = testKey{priv: key.(*rsa.PrivateKey), pem: pub}
		}
	})
	return keys
}

func inboxHeaders() http.Header {
	h := http.Header{}
	h.Set("Host", "local.example")
	h.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	h.Set("Content-Type", federation.ContentType)
	h.Set("Digest", "SHA-256=47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=")
	return h
}

func sign(t *testing.T, h http.Header, keyID string, key *rsa.PrivateKey, now time.Time) {
	t.Helper()
	sig, err := signature.CreateAt(now, keyID, http.MethodPost, "/inbox", time.Hour, h, signature.SignerRSA(key))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	h.Set("Signature", sig.Header())
}

func TestAuthenticate(t *testing.T) {
	k := testKeys(t)
	alice := domain.Actor{
		URI:          aliceURI,
		Username:     "alice",
		Domain:       "remote.example",
		PublicKeyPem: k[0].pem,
	}

	cases := []struct {
		name    string
		headers func(t *testing.T) http.Header
		path    string
		valid   bool
	}{
		{
			name: "valid",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				sign(t, h, alice.KeyID(), k[0].priv, time.Now())
				return h
			},
			valid: true,
		},
		{
			name: "expired",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				sign(t, h, alice.KeyID(), k[0].priv, time.Now().Add(-2*time.Hour))
				return h
			},
		},
		{
			name:    "no signature",
			headers: func(t *testing.T) http.Header { return inboxHeaders() },
		},
		{
			name: "malformed signature",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				h.Set("Signature", `keyId="`+alice.KeyID()+`",headers`)
				return h
			},
		},
		{
			name: "not a main key",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				sign(t, h, aliceURI+"#other-key", k[0].priv, time.Now())
				return h
			},
		},
		{
			name: "signed by another key",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				sign(t, h, alice.KeyID(), k[1].priv, time.Now())
				return h
			},
		},
		{
			name: "signed header altered",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				sign(t, h, alice.KeyID(), k[0].priv, time.Now())
				h.Set("Digest", "SHA-256=AAAA")
				return h
			},
		},
		{
			name: "signed header removed",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				sign(t, h, alice.KeyID(), k[0].priv, time.Now())
				h.Del("Content-Type")
				return h
			},
		},
		{
			name: "other path",
			headers: func(t *testing.T) http.Header {
				h := inboxHeaders()
				sign(t, h, alice.KeyID(), k[0].priv, time.Now())
				return h
			},
			path: "/users/alice/inbox",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gate := NewAuthGate(NewActorResolver(newMemStore(alice), mock_db.NewMockFetcher(ctrl), mock_db.NewMockClient(ctrl)))

			path := c.path
			if path == "" {
				path = "/inbox"
			}

			a, err := gate.Authenticate(context.Background(), http.MethodPost, path, c.headers(t))
			if !c.valid {
				if !errors.Is(err, federation.ErrNotAuthenticated) {
					t.Errorf("expected ErrNotAuthenticated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if a.URI != aliceURI {
				t.Errorf("expected %s, got %s", aliceURI, a.URI)
			}
		})
	}
}

func TestAuthenticateFetchesUnknownActor(t *testing.T) {
	k := testKeys(t)
	ctrl := gomock.NewController(t)
	fetcher := mock_db.NewMockFetcher(ctrl)
	wf := mock_db.NewMockClient(ctrl)
	store := newMemStore()
	gate := NewAuthGate(NewActorResolver(store, fetcher, wf))

	fetcher.EXPECT().
		GetJSON(gomock.Any(), aliceURI, federation.ContentType, gomock.Any()).
		DoAndReturn(serve(remoteDoc(aliceURI, k[0].pem))).
		Times(1)
	wf.EXPECT().Resolve(gomock.Any(), aliceURI).Return(webfinger.Info{Account: webfinger.Account{Username: "alice", Domain: "remote.example"}}, nil).Times(1)

	h := inboxHeaders()
	sign(t, h, aliceURI+federation.MainKeyFragment, k[0].priv, time.Now())

	a, err := gate.Authenticate(context.Background(), http.MethodPost, "/inbox", h)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if a.Domain != "remote.example" || a.ID == 0 {
		t.Errorf("unexpected actor %+v", a)
	}
}

func TestAuthenticateFetchFailure(t *testing.T) {
	k := testKeys(t)
	ctrl := gomock.NewController(t)
	fetcher := mock_db.NewMockFetcher(ctrl)
	gate := NewAuthGate(NewActorResolver(newMemStore(), fetcher, mock_db.NewMockClient(ctrl)))

	fetcher.EXPECT().
		GetJSON(gomock.Any(), aliceURI, federation.ContentType, gomock.Any()).
		Return(federation.ErrFetch).
		Times(1)

	h := inboxHeaders()
	sign(t, h, aliceURI+federation.MainKeyFragment, k[0].priv, time.Now())

	_, err := gate.Authenticate(context.Background(), http.MethodPost, "/inbox", h)
	if !errors.Is(err, federation.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
	if errors.Is(err, federation.ErrFetch) {
		t.Error("the rejection exposes the fetch failure")
	}
}
