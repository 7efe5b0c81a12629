package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/service"
	"github.com/sidereusnuntius/commune/internal/username"
	"github.com/sidereusnuntius/commune/internal/utils"
	"github.com/sidereusnuntius/commune/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

func (s *AppService) CreateUser(ctx context.Context, u service.NewUser) (domain.Actor, error) {
	u.Username = username.Canonical(strings.TrimSpace(u.Username))
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Domain == "" {
		u.Domain = s.Config.Domain
	}
	if u.Kind == "" {
		u.Kind = domain.Person
	}

	err := validate.NewAccount(u.Username, u.Password, u.Email)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}
	if domain.ParseActorKind(string(u.Kind)) != u.Kind {
		return domain.Actor{}, fmt.Errorf("%w: unknown actor kind %q", service.ErrInvalidInput, u.Kind)
	}

	account, err := s.populateAccount(u)
	if err != nil {
		return domain.Actor{}, err
	}

	actor := domain.NewLocalActor(u.Kind, u.Username, u.Domain)
	actor.PublicKeyPem, account.PrivateKeyPem, err = utils.GenerateKeysPem(s.keySize())
	if err != nil {
		return domain.Actor{}, err
	}

	actor, err = s.DB.CreateLocalUser(ctx, actor, account)
	if errors.Is(err, db.ErrDuplicate) {
		return domain.Actor{}, fmt.Errorf("%w: username or email already taken", service.ErrConflict)
	}
	if err != nil {
		return domain.Actor{}, err
	}

	log.Info().Str("uri", actor.URI).Str("kind", string(actor.Kind)).Msg("created local actor")
	return actor, nil
}

func (s *AppService) populateAccount(u service.NewUser) (account domain.User, err error) {
	account.Email = u.Email
	if u.Password == "" {
		return
	}

	p, err := bcrypt.GenerateFromPassword([]byte(u.Password), BcryptCost)
	account.PasswordHash = string(p)
	return
}

func (s *AppService) keySize() int {
	if s.Config.RsaKeySize > 0 {
		return s.Config.RsaKeySize
	}
	return 2048
}

func (s *AppService) GetLocalActor(ctx context.Context, path, name string) (domain.Actor, error) {
	name = username.FromIDNA(strings.TrimSpace(name))
	if name == "" {
		return domain.Actor{}, fmt.Errorf("%w: empty name", service.ErrInvalidInput)
	}

	actor, err := s.DB.GetActorByUsernameDomain(ctx, name, s.Config.Domain)
	if err != nil {
		return domain.Actor{}, err
	}

	if !actor.Local || domain.LocalPath(actor.Kind) != path {
		return domain.Actor{}, fmt.Errorf("%w: %s/%s", db.ErrNotFound, path, name)
	}
	return actor, nil
}
