package impl

import (
	"context"
	"time"

	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/db/pool"
	"github.com/sidereusnuntius/commune/internal/domain"
)

func (d *dbImpl) InsertFollow(ctx context.Context, followerID, followingID int64, role domain.FollowRole) error {
	return pool.Run(ctx, d.pool, func(ctx context.Context) error {
		now := time.Now().Unix()
		_, err := d.db.ExecContext(ctx,
			"INSERT INTO follows (follower_id, following_id, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			followerID, followingID, string(role), now, now)
		return d.HandleError(err)
	})
}

func (d *dbImpl) DeleteFollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	return pool.Do(ctx, d.pool, func(ctx context.Context) (bool, error) {
		res, err := d.db.ExecContext(ctx, "DELETE FROM follows WHERE follower_id = ? AND following_id = ?",
			followerID, followingID)
		if err != nil {
			return false, d.HandleError(err)
		}

		n, err := res.RowsAffected()
		return n > 0, d.HandleError(err)
	})
}

func (d *dbImpl) ListFollowers(ctx context.Context, actorID int64, page int) ([]domain.Actor, error) {
	if page < 1 {
		page = 1
	}
	if page > db.MaxPage {
		return []domain.Actor{}, nil
	}

	return pool.Do(ctx, d.pool, func(ctx context.Context) ([]domain.Actor, error) {
		rows, err := d.db.QueryContext(ctx, `SELECT `+qualified("a")+`
			FROM actors a JOIN follows f ON f.follower_id = a.id
			WHERE f.following_id = ? AND f.role <> 'pending'
			ORDER BY f.created_at DESC, f.rowid DESC
			LIMIT ? OFFSET ?`,
			actorID, db.PageSize, db.PageSize*(page-1))
		if err != nil {
			return nil, d.HandleError(err)
		}
		defer rows.Close()

		followers := []domain.Actor{}
		for rows.Next() {
			a, err := scanActor(rows)
			if err != nil {
				return nil, d.HandleError(err)
			}
			followers = append(followers, a)
		}
		return followers, d.HandleError(rows.Err())
	})
}

func (d *dbImpl) CountFollowers(ctx context.Context, actorID int64) (int64, error) {
	return pool.Do(ctx, d.pool, func(ctx context.Context) (int64, error) {
		var n int64
		err := d.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM follows WHERE following_id = ? AND role <> 'pending'", actorID).Scan(&n)
		return n, d.HandleError(err)
	})
}
