package domain

import (
	"fmt"
	"time"

	"github.com/sidereusnuntius/commune/internal/username"
)

type ActorKind string

const (
	Person      ActorKind = "Person"
	Service     ActorKind = "Service"
	Application ActorKind = "Application"
	Group       ActorKind = "Group"
)

// ParseActorKind maps an ActivityStreams actor type to an ActorKind. Types outside the four known ones are
// stored as Person.
func ParseActorKind(s string) ActorKind {
	switch k := ActorKind(s); k {
	case Person, Service, Application, Group:
		return k
	default:
		return Person
	}
}

// Actor is a federated identity, local or remote. URI is its identity key and never changes once the
// record exists.
type Actor struct {
	ID           int64
	URI          string
	URL          string
	Kind         ActorKind
	Username     string
	Domain       string
	Name         string
	Summary      string
	AvatarURL    string
	Inbox        string
	Outbox       string
	SharedInbox  string
	Followers    string
	Following    string
	PublicKeyPem string
	Lang         string
	Local        bool
	Locked       bool
	Suspended    bool
	Silenced     bool
	Created      time.Time
	Updated      time.Time
}

// KeyID is the id of the actor's primary public key.
func (a *Actor) KeyID() string {
	return a.URI + "#main-key"
}

// LocalPath returns the path segment under which local actors of the given kind live.
func LocalPath(kind ActorKind) string {
	if kind == Group {
		return "communities"
	}
	return "users"
}

// NewLocalActor lays out the collections of an actor hosted on host. Groups do not follow anyone, so they
// get no following collection.
func NewLocalActor(kind ActorKind, name, host string) Actor {
	wire := username.ToIDNA(name)
	base := fmt.Sprintf("https://%s/%s/%s", host, LocalPath(kind), wire)

	a := Actor{
		URI:         base,
		URL:         fmt.Sprintf("https://%s/@%s", host, wire),
		Kind:        kind,
		Username:    name,
		Domain:      host,
		Inbox:       base + "/inbox",
		Outbox:      base + "/outbox",
		SharedInbox: fmt.Sprintf("https://%s/inbox", host),
		Followers:   base + "/followers",
		Lang:        "und",
		Local:       true,
	}
	if kind != Group {
		a.Following = base + "/following"
	}
	return a
}
