package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/commune/internal/domain"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
)

// NewUser is the input of CreateUser. Password and Email may both be empty for accounts nobody logs into,
// such as the instance actor. An empty Domain means the configured one, an empty Kind means Person.
type NewUser struct {
	Username string
	Domain   string
	Password string
	Email    string
	Kind     domain.ActorKind
}

type Service interface {
	// CreateUser validates u, generates the account's key pair and stores the local actor with its
	// credentials. A taken username or email yields ErrConflict.
	CreateUser(ctx context.Context, u NewUser) (domain.Actor, error)
	// GetLocalActor returns the local actor served under path (see domain.LocalPath) with the given wire
	// username. Remote actors and actors of the other path are reported as db.ErrNotFound.
	GetLocalActor(ctx context.Context, path, name string) (domain.Actor, error)
	// GetFollowers returns one page, starting at 1, of the accepted followers of actor.
	GetFollowers(ctx context.Context, actor domain.Actor, page int) ([]domain.Actor, error)
	CountFollowers(ctx context.Context, actor domain.Actor) (int64, error)
}
