// Package db defines the storage contracts used by the federation core and the errors every implementation
// reports through them.
package db

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInsert   = errors.New("insert failed")
	// ErrDuplicate is an ErrInsert caused by a unique key that is already taken.
	ErrDuplicate = fmt.Errorf("%w: duplicate key", ErrInsert)
	// ErrInternal covers pool exhaustion and any storage failure that is not one of the above.
	ErrInternal = errors.New("internal storage error")
)

// PageSize is the number of followers in one collection page.
const PageSize = 12

// MaxPage is the highest page number a store accepts; its offset fits in 32 bits.
const MaxPage = math.MaxInt32 / PageSize

// DB is the whole storage layer.
type DB interface {
	ActorStore
	FollowStore
	AccountStore
}
