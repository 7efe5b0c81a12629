package gateway

import (
	"context"
	"sync"

	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
)

type edge struct {
	follower, following int64
}

// memStore is an in-memory ActorStore and FollowStore.
type memStore struct {
	mu      sync.Mutex
	actors  map[string]domain.Actor
	follows map[edge]domain.FollowRole
	nextID  int64
	inserts int
}

func newMemStore(actors ...domain.Actor) *memStore {
	s := &memStore{
		actors:  map[string]domain.Actor{},
		follows: map[edge]domain.FollowRole{},
	}
	for _, a := range actors {
		s.InsertOrGetActor(context.Background(), a)
	}
	return s
}

func (s *memStore) GetActorByURI(_ context.Context, uri string) (domain.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[uri]
	if !ok {
		return domain.Actor{}, db.ErrNotFound
	}
	return a, nil
}

func (s *memStore) GetActorByUsernameDomain(_ context.Context, username, host string) (domain.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.actors {
		if a.Username == username && a.Domain == host {
			return a, nil
		}
	}
	return domain.Actor{}, db.ErrNotFound
}

func (s *memStore) InsertOrGetActor(_ context.Context, a domain.Actor) (domain.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.actors[a.URI]; ok {
		return existing, nil
	}
	s.nextID++
	s.inserts++
	a.ID = s.nextID
	s.actors[a.URI] = a
	return a, nil
}

func (s *memStore) InsertFollow(_ context.Context, followerID, followingID int64, role domain.FollowRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := edge{followerID, followingID}
	if _, ok := s.follows[e]; ok {
		return db.ErrDuplicate
	}
	s.follows[e] = role
	return nil
}

func (s *memStore) DeleteFollow(_ context.Context, followerID, followingID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := edge{followerID, followingID}
	_, ok := s.follows[e]
	delete(s.follows, e)
	return ok, nil
}

func (s *memStore) ListFollowers(_ context.Context, actorID int64, _ int) ([]domain.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.Actor
	for e, role := range s.follows {
		if e.following != actorID || role != domain.RoleFollower {
			continue
		}
		for _, a := range s.actors {
			if a.ID == e.follower {
				res = append(res, a)
			}
		}
	}
	return res, nil
}

func (s *memStore) CountFollowers(_ context.Context, actorID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for e, role := range s.follows {
		if e.following == actorID && role == domain.RoleFollower {
			n++
		}
	}
	return n, nil
}

func (s *memStore) role(follower, following int64) (domain.FollowRole, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.follows[edge{follower, following}]
	return r, ok
}
