package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/client"
	"github.com/sidereusnuntius/commune/internal/conversions"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/webfinger"
)

// ActorResolver returns actors from the store, fetching and storing the remote ones it has not seen yet.
type ActorResolver struct {
	store     db.ActorStore
	fetcher   client.Fetcher
	webfinger webfinger.Client
	locks     *mutexes.MutexMap
}

func NewActorResolver(store db.ActorStore, fetcher client.Fetcher, wf webfinger.Client) *ActorResolver {
	locks := mutexes.MutexMap{}
	return &ActorResolver{
		store:     store,
		fetcher:   fetcher,
		webfinger: wf,
		locks:     &locks,
	}
}

// GetOrFetch returns the actor identified by uri. On a store miss the actor document is fetched, its
// authority checked against WebFinger, and the result stored. Concurrent calls for one unknown uri are
// serialized, so only the first one goes to the network.
func (r *ActorResolver) GetOrFetch(ctx context.Context, uri string) (domain.Actor, error) {
	actor, err := r.store.GetActorByURI(ctx, uri)
	if !errors.Is(err, db.ErrNotFound) {
		return actor, err
	}

	unlock := r.locks.Lock(uri)
	defer unlock()

	// Someone else may have stored it while we waited for the lock.
	actor, err = r.store.GetActorByURI(ctx, uri)
	if !errors.Is(err, db.ErrNotFound) {
		return actor, err
	}

	actor, err = r.fetch(ctx, uri)
	if err != nil {
		return domain.Actor{}, err
	}

	log.Debug().Str("uri", uri).Str("domain", actor.Domain).Msg("storing remote actor")
	return r.store.InsertOrGetActor(ctx, actor)
}

func (r *ActorResolver) fetch(ctx context.Context, uri string) (domain.Actor, error) {
	var doc federation.Actor
	if err := r.fetcher.GetJSON(ctx, uri, federation.ContentType, &doc); err != nil {
		return domain.Actor{}, err
	}

	if doc.ID != uri {
		return domain.Actor{}, fmt.Errorf("%w: fetched %s but the document is %q",
			federation.ErrUnprocessablePropValue, uri, doc.ID)
	}

	host, err := r.authority(ctx, uri)
	if err != nil {
		return domain.Actor{}, err
	}
	return conversions.RemoteActor(&doc, host)
}

// authority returns the domain an actor is stored under: the one of its WebFinger account when the query
// succeeds, else the host of its uri.
func (r *ActorResolver) authority(ctx context.Context, uri string) (string, error) {
	info, err := r.webfinger.Resolve(ctx, uri)
	if err == nil {
		return info.Account.Domain, nil
	}
	log.Debug().Err(err).Str("uri", uri).Msg("webfinger failed, falling back to the uri host")

	u, err := url.Parse(uri)
	if err != nil || u.Hostname() == "" {
		return "", fmt.Errorf("%w: id %q", federation.ErrUnprocessablePropValue, uri)
	}
	return u.Hostname(), nil
}

// Get returns an actor already in the store.
func (r *ActorResolver) Get(ctx context.Context, uri string) (domain.Actor, error) {
	return r.store.GetActorByURI(ctx, uri)
}
