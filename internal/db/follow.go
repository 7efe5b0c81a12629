package db

import (
	"context"

	"github.com/sidereusnuntius/commune/internal/domain"
)

type FollowStore interface {
	// InsertFollow creates the edge follower -> following. An existing edge yields ErrDuplicate.
	InsertFollow(ctx context.Context, followerID, followingID int64, role domain.FollowRole) error
	// DeleteFollow removes the edge follower -> following and reports whether there was one.
	DeleteFollow(ctx context.Context, followerID, followingID int64) (deleted bool, err error)
	// ListFollowers returns one page, starting at 1, of the accepted followers of an actor, newest first.
	ListFollowers(ctx context.Context, actorID int64, page int) ([]domain.Actor, error)
	// CountFollowers counts accepted followers; pending requests are left out.
	CountFollowers(ctx context.Context, actorID int64) (int64, error)
}
