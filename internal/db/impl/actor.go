package impl

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sidereusnuntius/commune/internal/db/pool"
	"github.com/sidereusnuntius/commune/internal/domain"
)

const actorColumns = "id, uri, url, kind, username, domain, name, summary, avatar_url, inbox_uri, outbox_uri, " +
	"shared_inbox_uri, followers_uri, following_uri, public_key_pem, lang, local, is_locked, is_suspended, " +
	"is_silenced, created_at, updated_at"

const insertActor = `INSERT INTO actors (uri, url, kind, username, domain, name, summary, avatar_url, inbox_uri,
	outbox_uri, shared_inbox_uri, followers_uri, following_uri, public_key_pem, lang, local, is_locked,
	is_suspended, is_silenced, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// qualified prefixes every actor column with alias.
func qualified(alias string) string {
	return alias + "." + strings.ReplaceAll(actorColumns, ", ", ", "+alias+".")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActor(row scanner) (a domain.Actor, err error) {
	var (
		url, sharedInbox, followers, following sql.NullString
		kind                                   string
		created                                int64
		updated                                sql.NullInt64
	)

	err = row.Scan(
		&a.ID, &a.URI, &url, &kind, &a.Username, &a.Domain, &a.Name, &a.Summary, &a.AvatarURL, &a.Inbox,
		&a.Outbox, &sharedInbox, &followers, &following, &a.PublicKeyPem, &a.Lang, &a.Local, &a.Locked,
		&a.Suspended, &a.Silenced, &created, &updated,
	)
	if err != nil {
		return
	}

	a.URL = url.String
	a.Kind = domain.ParseActorKind(kind)
	a.SharedInbox = sharedInbox.String
	a.Followers = followers.String
	a.Following = following.String
	a.Created = time.Unix(created, 0)
	if updated.Valid {
		a.Updated = time.Unix(updated.Int64, 0)
	}
	return
}

func nullable(s string) sql.NullString {
	return sql.NullString{Valid: s != "", String: s}
}

func actorArgs(a domain.Actor, now time.Time) []any {
	lang := a.Lang
	if lang == "" {
		lang = "und"
	}
	return []any{
		a.URI, nullable(a.URL), string(a.Kind), a.Username, a.Domain, a.Name, a.Summary, a.AvatarURL, a.Inbox,
		a.Outbox, nullable(a.SharedInbox), nullable(a.Followers), nullable(a.Following), a.PublicKeyPem, lang,
		a.Local, a.Locked, a.Suspended, a.Silenced, now.Unix(), now.Unix(),
	}
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getActorByURI(ctx context.Context, q querier, uri string) (domain.Actor, error) {
	return scanActor(q.QueryRowContext(ctx, "SELECT "+actorColumns+" FROM actors WHERE uri = ?", uri))
}

func (d *dbImpl) GetActorByURI(ctx context.Context, uri string) (domain.Actor, error) {
	return pool.Do(ctx, d.pool, func(ctx context.Context) (domain.Actor, error) {
		a, err := getActorByURI(ctx, d.db, uri)
		return a, d.HandleError(err)
	})
}

func (d *dbImpl) GetActorByUsernameDomain(ctx context.Context, username, host string) (domain.Actor, error) {
	return pool.Do(ctx, d.pool, func(ctx context.Context) (domain.Actor, error) {
		row := d.db.QueryRowContext(ctx,
			"SELECT "+actorColumns+" FROM actors WHERE username = ? AND domain = ? ORDER BY local DESC, id LIMIT 1",
			username, host)
		a, err := scanActor(row)
		return a, d.HandleError(err)
	})
}

// InsertOrGetActor relies on the unique uri column: a concurrent insert of the same actor is turned into a
// no-op by the conflict clause, and both callers then read the single stored row.
func (d *dbImpl) InsertOrGetActor(ctx context.Context, a domain.Actor) (domain.Actor, error) {
	return pool.Do(ctx, d.pool, func(ctx context.Context) (domain.Actor, error) {
		_, err := d.db.ExecContext(ctx, insertActor+" ON CONFLICT (uri) DO NOTHING", actorArgs(a, time.Now())...)
		if err != nil {
			return domain.Actor{}, d.HandleError(err)
		}

		stored, err := getActorByURI(ctx, d.db, a.URI)
		return stored, d.HandleError(err)
	})
}
