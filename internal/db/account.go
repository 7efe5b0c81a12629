package db

import (
	"context"

	"github.com/sidereusnuntius/commune/internal/domain"
)

type AccountStore interface {
	// CreateLocalUser inserts a local actor and its account in one transaction. The returned actor has its id
	// set. A taken username or URI yields ErrDuplicate.
	CreateLocalUser(ctx context.Context, a domain.Actor, u domain.User) (domain.Actor, error)
	GetPrivateKeyByActorURI(ctx context.Context, uri string) (string, error)
}
