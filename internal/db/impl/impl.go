// Package impl is the sqlite implementation of the storage contracts. Every call is dispatched through a
// pool.Pool.
package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/db/pool"
)

type dbImpl struct {
	Config config.Configuration
	db     *sql.DB
	pool   *pool.Pool
}

func New(config config.Configuration, d *sql.DB, p *pool.Pool) db.DB {
	return &dbImpl{
		Config: config,
		db:     d,
		pool:   p,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return db.ErrNotFound
	case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrInsert), errors.Is(err, db.ErrInternal):
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%w: %s", db.ErrDuplicate, sqliteErr.Error())
		default:
			return fmt.Errorf("%w: %s", db.ErrInsert, sqliteErr.Error())
		}
	}

	log.Error().Err(err).Msg("database error")
	return fmt.Errorf("%w: %w", db.ErrInternal, err)
}

func (d *dbImpl) WithTx(ctx context.Context, f func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = d.HandleError(f(tx))
	return
}
