package db

import (
	"context"

	"github.com/sidereusnuntius/commune/internal/domain"
)

type ActorStore interface {
	GetActorByURI(ctx context.Context, uri string) (domain.Actor, error)
	// GetActorByUsernameDomain looks an actor up by its display username and domain.
	GetActorByUsernameDomain(ctx context.Context, username, domain string) (domain.Actor, error)
	// InsertOrGetActor stores a and returns it with its id set. If an actor with the same URI already
	// exists, the stored record is returned untouched instead; two records never share a URI.
	InsertOrGetActor(ctx context.Context, a domain.Actor) (domain.Actor, error)
}
