// The init package contains functions that setup required dependencies such as the SQLite database.
package initialization

import (
	"context"
	"crypto"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/utils"
)

// SetupDB applies all remaining migrations found in folder.
func SetupDB(d *sql.DB, folder, dbname string) error {
	log.Info().Str("folder", folder).Msg("starting migrations")
	driver, err := sqlite3.WithInstance(d, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("database schema is up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}
	return nil
}

// OpenDB opens the sqlite database with foreign keys enforced. At most poolSize connections are kept open,
// matching the number of storage slots.
func OpenDB(connString string, poolSize int) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(connString, "?") {
		sep = "&"
	}

	d, err := sql.Open("sqlite3", connString+sep+"_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}

	d.SetMaxOpenConns(poolSize)
	if err = d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("connecting to %s: %w", connString, err)
	}
	return d, nil
}

// EnsureInstance returns the instance actor, the Application actor speaking for the server itself, creating
// it along with its key pair on first start. The actor's private key is returned too, since it signs the
// server's outbound fetches.
func EnsureInstance(ctx context.Context, store db.DB, cfg *config.Configuration) (domain.Actor, crypto.PrivateKey, error) {
	instance := domain.NewLocalActor(domain.Application, cfg.Federation.InstanceActor, cfg.Domain)
	instance.Name = cfg.Domain

	actor, err := store.GetActorByURI(ctx, instance.URI)
	if errors.Is(err, db.ErrNotFound) {
		log.Info().Str("uri", instance.URI).Msg("creating instance actor")
		actor, err = createInstance(ctx, store, instance, cfg.RsaKeySize)
	}
	if err != nil {
		return domain.Actor{}, nil, err
	}

	keyPem, err := store.GetPrivateKeyByActorURI(ctx, actor.URI)
	if err != nil {
		return domain.Actor{}, nil, fmt.Errorf("instance actor key: %w", err)
	}

	key, err := utils.ParsePrivateKeyPem(keyPem)
	if err != nil {
		return domain.Actor{}, nil, fmt.Errorf("instance actor key: %w", err)
	}
	return actor, key, nil
}

func createInstance(ctx context.Context, store db.DB, instance domain.Actor, keySize int) (domain.Actor, error) {
	if keySize == 0 {
		keySize = 2048
	}

	pub, priv, err := utils.GenerateKeysPem(keySize)
	if err != nil {
		return domain.Actor{}, err
	}
	instance.PublicKeyPem = pub

	actor, err := store.CreateLocalUser(ctx, instance, domain.User{PrivateKeyPem: priv})
	if errors.Is(err, db.ErrDuplicate) {
		// Another process created it in the meantime.
		return store.GetActorByURI(ctx, instance.URI)
	}
	return actor, err
}
