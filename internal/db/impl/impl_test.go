package impl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/db/pool"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	dir, err := os.MkdirTemp("", "commune-db")
	if err != nil {
		log.Error().Err(err).Msg("tests setup failure")
		return 1
	}
	defer os.RemoveAll(dir)

	cfg := config.Configuration{Domain: "local.example"}
	d, err := initialization.OpenDB(filepath.Join(dir, "test.db"), 4)
	if err != nil {
		log.Error().Err(err).Msg("tests setup failure")
		return 1
	}
	defer d.Close()

	if err = initialization.SetupDB(d, "../../../migrations", "test"); err != nil {
		log.Error().Err(err).Msg("tests setup failure")
		return 1
	}

	DB = New(cfg, d, pool.New(4, time.Second))
	return m.Run()
}

func remoteActor(name string) domain.Actor {
	uri := fmt.Sprintf("https://remote.example/users/%s", name)
	return domain.Actor{
		URI:          uri,
		URL:          "https://remote.example/@" + name,
		Kind:         domain.Person,
		Username:     name,
		Domain:       "remote.example",
		Inbox:        uri + "/inbox",
		Outbox:       uri + "/outbox",
		Followers:    uri + "/followers",
		PublicKeyPem: "pem",
	}
}

var ignoreGenerated = cmpopts.IgnoreFields(domain.Actor{}, "ID", "Created", "Updated", "Lang")

func TestInsertOrGetActor(t *testing.T) {
	a := remoteActor("insert")

	first, err := DB.InsertOrGetActor(ctx, a)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if first.ID == 0 {
		t.Error("expected the stored actor to have an id")
	}
	if diff := cmp.Diff(a, first, ignoreGenerated); diff != "" {
		t.Error(diff)
	}

	changed := a
	changed.Name = "someone else"
	second, err := DB.InsertOrGetActor(ctx, changed)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if second.ID != first.ID || second.Name != first.Name {
		t.Errorf("expected the existing record to be returned untouched, got %+v", second)
	}

	byURI, err := DB.GetActorByURI(ctx, a.URI)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if byURI.ID != first.ID {
		t.Errorf("expected id %d, got %d", first.ID, byURI.ID)
	}

	byName, err := DB.GetActorByUsernameDomain(ctx, "insert", "remote.example")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if byName.ID != first.ID {
		t.Errorf("expected id %d, got %d", first.ID, byName.ID)
	}
}

func TestInsertOrGetActorConcurrent(t *testing.T) {
	a := remoteActor("concurrent")

	var wg sync.WaitGroup
	ids := make([]int64, 8)
	errs := make([]error, 8)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stored, err := DB.InsertOrGetActor(ctx, a)
			ids[i], errs[i] = stored.ID, err
		}()
	}
	wg.Wait()

	for i := range ids {
		if errs[i] != nil {
			t.Errorf("unexpected error: %s", errs[i])
		}
		if ids[i] != ids[0] {
			t.Errorf("expected every caller to get id %d, got %d", ids[0], ids[i])
		}
	}
}

func TestGetActorNotFound(t *testing.T) {
	_, err := DB.GetActorByURI(ctx, "https://remote.example/users/nobody")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = DB.GetActorByUsernameDomain(ctx, "nobody", "remote.example")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFollows(t *testing.T) {
	target, err := DB.InsertOrGetActor(ctx, remoteActor("target"))
	if err != nil {
		t.Fatal(err)
	}

	var followers []domain.Actor
	for i := range db.PageSize + 2 {
		f, err := DB.InsertOrGetActor(ctx, remoteActor(fmt.Sprintf("follower%d", i)))
		if err != nil {
			t.Fatal(err)
		}
		followers = append(followers, f)
		if err = DB.InsertFollow(ctx, f.ID, target.ID, domain.RoleFollower); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	pending, err := DB.InsertOrGetActor(ctx, remoteActor("pending"))
	if err != nil {
		t.Fatal(err)
	}
	if err = DB.InsertFollow(ctx, pending.ID, target.ID, domain.RolePending); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	err = DB.InsertFollow(ctx, followers[0].ID, target.ID, domain.RoleFollower)
	if !errors.Is(err, db.ErrDuplicate) || !errors.Is(err, db.ErrInsert) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	count, err := DB.CountFollowers(ctx, target.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if count != int64(len(followers)) {
		t.Errorf("expected %d followers, got %d", len(followers), count)
	}

	cases := []struct {
		page     int
		expected int
	}{
		{page: 1, expected: db.PageSize},
		{page: 2, expected: 2},
		{page: 3, expected: 0},
		{page: math.MaxInt, expected: 0},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("page %d", c.page), func(t *testing.T) {
			list, err := DB.ListFollowers(ctx, target.ID, c.page)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if len(list) != c.expected {
				t.Errorf("expected %d followers, got %d", c.expected, len(list))
			}
			for _, a := range list {
				if a.ID == pending.ID {
					t.Error("pending follower listed")
				}
			}
		})
	}

	first, err := DB.ListFollowers(ctx, target.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if newest := followers[len(followers)-1]; first[0].ID != newest.ID {
		t.Errorf("expected newest follower %d first, got %d", newest.ID, first[0].ID)
	}

	deleted, err := DB.DeleteFollow(ctx, followers[0].ID, target.ID)
	if err != nil || !deleted {
		t.Errorf("expected the edge to be deleted, got %t, %v", deleted, err)
	}
	deleted, err = DB.DeleteFollow(ctx, followers[0].ID, target.ID)
	if err != nil || deleted {
		t.Errorf("expected nothing to delete, got %t, %v", deleted, err)
	}
}

func TestInsertFollowUnknownActor(t *testing.T) {
	err := DB.InsertFollow(ctx, 999999, 999998, domain.RoleFollower)
	if !errors.Is(err, db.ErrInsert) || errors.Is(err, db.ErrDuplicate) {
		t.Errorf("expected a non duplicate ErrInsert, got %v", err)
	}
}

func TestCreateLocalUser(t *testing.T) {
	a := domain.NewLocalActor(domain.Person, "localuser", "local.example")
	a.PublicKeyPem = "public"
	u := domain.User{Email: "local@local.example", PasswordHash: "hash", PrivateKeyPem: "private"}

	stored, err := DB.CreateLocalUser(ctx, a, u)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !stored.Local || stored.ID == 0 {
		t.Errorf("unexpected stored actor %+v", stored)
	}

	key, err := DB.GetPrivateKeyByActorURI(ctx, a.URI)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if key != "private" {
		t.Errorf("unexpected private key %q", key)
	}

	_, err = DB.CreateLocalUser(ctx, a, domain.User{Email: "other@local.example", PrivateKeyPem: "private"})
	if !errors.Is(err, db.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	_, err = DB.GetPrivateKeyByActorURI(ctx, "https://remote.example/users/insert")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound for an actor without an account, got %v", err)
	}
}
