package impl

import (
	"context"
	"database/sql"
	"time"

	"github.com/sidereusnuntius/commune/internal/db/pool"
	"github.com/sidereusnuntius/commune/internal/domain"
)

func (d *dbImpl) CreateLocalUser(ctx context.Context, a domain.Actor, u domain.User) (domain.Actor, error) {
	return pool.Do(ctx, d.pool, func(ctx context.Context) (stored domain.Actor, err error) {
		a.Local = true
		err = d.WithTx(ctx, func(tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx, insertActor, actorArgs(a, time.Now())...)
			if err != nil {
				return err
			}

			id, err := res.LastInsertId()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx,
				"INSERT INTO users (actor_id, email, password_hash, private_key_pem) VALUES (?, ?, ?, ?)",
				id, nullable(u.Email), nullable(u.PasswordHash), u.PrivateKeyPem)
			if err != nil {
				return err
			}

			stored, err = getActorByURI(ctx, tx, a.URI)
			return err
		})
		return
	})
}

func (d *dbImpl) GetPrivateKeyByActorURI(ctx context.Context, uri string) (string, error) {
	return pool.Do(ctx, d.pool, func(ctx context.Context) (string, error) {
		var key string
		err := d.db.QueryRowContext(ctx,
			"SELECT u.private_key_pem FROM users u JOIN actors a ON a.id = u.actor_id WHERE a.uri = ?", uri).Scan(&key)
		return key, d.HandleError(err)
	})
}
