package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/conversions"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/signature"
)

// AuthGate authenticates inbound requests by their HTTP signature. It does no authorization.
type AuthGate struct {
	actors *ActorResolver
}

func NewAuthGate(actors *ActorResolver) *AuthGate {
	return &AuthGate{actors: actors}
}

// Authenticate verifies the Signature header of a request made with method to pathAndQuery. Only keys named
// {actor}#main-key are accepted. The reason for a rejection is logged, never returned.
func (g *AuthGate) Authenticate(ctx context.Context, method, pathAndQuery string, headers http.Header) (domain.Actor, error) {
	actor, err := g.authenticate(ctx, method, pathAndQuery, headers)
	if err != nil {
		log.Debug().Err(err).Str("path", pathAndQuery).Msg("request authentication failed")
		return domain.Actor{}, federation.ErrNotAuthenticated
	}
	return actor, nil
}

func (g *AuthGate) authenticate(ctx context.Context, method, pathAndQuery string, headers http.Header) (domain.Actor, error) {
	value := headers.Get("Signature")
	if value == "" {
		return domain.Actor{}, errors.New("no signature header")
	}

	sig, err := signature.Parse(value)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parsing signature: %w", err)
	}

	actorURI, ok := strings.CutSuffix(sig.KeyID, federation.MainKeyFragment)
	if !ok || actorURI == "" {
		return domain.Actor{}, fmt.Errorf("key %q is not a main key", sig.KeyID)
	}

	actor, err := g.actors.GetOrFetch(ctx, actorURI)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("resolving %s: %w", actorURI, err)
	}

	key, err := conversions.ParsePublicKeyPem(actor.PublicKeyPem)
	if err != nil {
		return domain.Actor{}, err
	}

	verify, err := signature.VerifierFor(key)
	if err != nil {
		return domain.Actor{}, err
	}

	valid, err := sig.Verify(method, pathAndQuery, headers, verify)
	if err != nil {
		return domain.Actor{}, err
	}
	if !valid {
		return domain.Actor{}, fmt.Errorf("signature by %s does not match", sig.KeyID)
	}
	return actor, nil
}
