package core

import (
	"context"
	"fmt"

	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/service"
)

func (s *AppService) GetFollowers(ctx context.Context, actor domain.Actor, page int) ([]domain.Actor, error) {
	if page < 1 || page > db.MaxPage {
		return nil, fmt.Errorf("%w: page %d", service.ErrInvalidInput, page)
	}
	return s.DB.ListFollowers(ctx, actor.ID, page)
}

func (s *AppService) CountFollowers(ctx context.Context, actor domain.Actor) (int64, error) {
	return s.DB.CountFollowers(ctx, actor.ID)
}
