// Package gateway is the federation boundary: it authenticates signed inbound requests, resolves the remote
// actors behind them and applies the activities they deliver to the social graph.
package gateway

import (
	"context"
	"net/http"

	"github.com/sidereusnuntius/commune/internal/client"
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/webfinger"
)

type FedGateway interface {
	// Authenticate turns the headers of an inbound request into the actor that signed it. Every failure
	// wraps federation.ErrNotAuthenticated.
	Authenticate(ctx context.Context, method, pathAndQuery string, headers http.Header) (domain.Actor, error)
	// Process applies an activity delivered by the authenticated actor.
	Process(ctx context.Context, actor domain.Actor, activity federation.Activity) error
}

type FedGatewayImpl struct {
	*AuthGate
	*InboxProcessor
}

func New(store db.DB, fetcher client.Fetcher, wf webfinger.Client, cfg *config.Configuration) FedGateway {
	resolver := NewActorResolver(store, fetcher, wf)
	return &FedGatewayImpl{
		AuthGate:       NewAuthGate(resolver),
		InboxProcessor: NewInboxProcessor(resolver, store, cfg.Federation.DuplicateFollow),
	}
}
