package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
)

// InboxProcessor applies inbound activities to the social graph.
type InboxProcessor struct {
	actors          *ActorResolver
	follows         db.FollowStore
	duplicateFollow string
}

// NewInboxProcessor returns a processor applying duplicateFollow, one of config.DuplicateFollowIgnore and
// config.DuplicateFollowReject, to a Follow that is already recorded.
func NewInboxProcessor(actors *ActorResolver, follows db.FollowStore, duplicateFollow string) *InboxProcessor {
	return &InboxProcessor{
		actors:          actors,
		follows:         follows,
		duplicateFollow: duplicateFollow,
	}
}

// Process applies activity, which was delivered by actor. actor must be the activity's actor.
func (p *InboxProcessor) Process(ctx context.Context, actor domain.Actor, activity federation.Activity) error {
	if actor.URI != activity.Actor {
		return fmt.Errorf("%w: %s delivered an activity by %s", federation.ErrNotAuthenticated, actor.URI, activity.Actor)
	}

	switch activity.Kind() {
	case federation.KindFollow:
		return p.processFollow(ctx, &activity)
	case federation.KindUndo:
		return p.processUndo(ctx, &activity)
	case federation.KindCreate:
		return fmt.Errorf("%w: Create", federation.ErrUnsupported)
	default:
		return fmt.Errorf("%w: %s", federation.ErrUnsupported, activity.Type)
	}
}

func (p *InboxProcessor) processFollow(ctx context.Context, follow *federation.Activity) error {
	targetURI, err := objectIRI(follow)
	if err != nil {
		return err
	}

	// Local actors are always stored, so the target is never fetched.
	target, err := p.actors.Get(ctx, targetURI)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return err
	}
	if err != nil || !target.Local {
		return fmt.Errorf("%w: %s is not a local actor", federation.ErrUnprocessablePropValue, targetURI)
	}

	follower, err := p.actors.GetOrFetch(ctx, follow.Actor)
	if err != nil {
		return err
	}

	role := domain.RoleFollower
	if target.Locked {
		role = domain.RolePending
	}

	err = p.follows.InsertFollow(ctx, follower.ID, target.ID, role)
	if errors.Is(err, db.ErrDuplicate) && p.duplicateFollow != config.DuplicateFollowReject {
		log.Debug().Str("follower", follower.URI).Str("following", target.URI).Msg("follow already recorded")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("follower", follower.URI).
		Str("following", target.URI).
		Str("role", string(role)).
		Msg("follow recorded")
	return nil
}

func (p *InboxProcessor) processUndo(ctx context.Context, undo *federation.Activity) error {
	nested, err := objectActivity(undo)
	if err != nil {
		return err
	}

	switch nested.Kind() {
	case federation.KindFollow:
		return p.processUndoFollow(ctx, undo.Actor, nested)
	default:
		return fmt.Errorf("%w: Undo of %s", federation.ErrUnsupported, nested.Type)
	}
}

// processUndoFollow deletes the edge follower -> nested.object. Undoing a follow that was never recorded, or
// that names an actor the store does not know, succeeds without changes.
func (p *InboxProcessor) processUndoFollow(ctx context.Context, followerURI string, follow *federation.Activity) error {
	targetURI, err := objectIRI(follow)
	if err != nil {
		return err
	}

	follower, err := p.actors.Get(ctx, followerURI)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	target, err := p.actors.Get(ctx, targetURI)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	deleted, err := p.follows.DeleteFollow(ctx, follower.ID, target.ID)
	if err != nil {
		return err
	}

	log.Info().
		Str("follower", follower.URI).
		Str("following", target.URI).
		Bool("deleted", deleted).
		Msg("follow undone")
	return nil
}
