// Package webfinger queries remote WebFinger endpoints and renders the local ones.
package webfinger

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sidereusnuntius/commune/internal/client"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/username"
)

const acctPrefix = "acct:"

// ErrInvalidAccount is returned by ParseAccount.
var ErrInvalidAccount = fmt.Errorf("%w: invalid account", federation.ErrInvalidForm)

// Account is a user@domain handle.
type Account struct {
	Username string
	Domain   string
}

// ParseAccount parses an acct: resource. The part after the prefix must hold exactly one @ with text on both
// sides.
func ParseAccount(resource string) (Account, error) {
	rest, ok := strings.CutPrefix(resource, acctPrefix)
	if !ok {
		return Account{}, fmt.Errorf("%w: %q lacks the acct: prefix", ErrInvalidAccount, resource)
	}

	name, host, ok := strings.Cut(rest, "@")
	if !ok || name == "" || host == "" || strings.Contains(host, "@") {
		return Account{}, fmt.Errorf("%w: %q", ErrInvalidAccount, resource)
	}
	return Account{Username: name, Domain: host}, nil
}

func (a Account) String() string {
	return acctPrefix + a.Username + "@" + a.Domain
}

type Link struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

type Response struct {
	Subject string   `json:"subject"`
	Aliases []string `json:"aliases,omitempty"`
	Links   []Link   `json:"links"`
}

// Info is what a successful resolution yields.
type Info struct {
	Account    Account
	ActorURI   string
	ProfileURL string
}

// Client is the resolution side of WebFinger, as consumed by actor resolution.
type Client interface {
	Resolve(ctx context.Context, resource string) (Info, error)
}

type Resolver struct {
	fetcher client.Fetcher
}

// NewResolver returns a Resolver issuing its queries through fetcher, which should not sign requests.
func NewResolver(fetcher client.Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve queries the WebFinger endpoint responsible for resource, which is either an acct: handle or an
// absolute URI. Both an ActivityPub actor link and a profile page link must be present. Every failure wraps
// federation.ErrFetch.
func (r *Resolver) Resolve(ctx context.Context, resource string) (Info, error) {
	host, err := queryDomain(resource)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", federation.ErrFetch, err)
	}

	query := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     "/.well-known/webfinger",
		RawQuery: url.Values{"resource": {resource}}.Encode(),
	}

	var res Response
	err = r.fetcher.GetJSON(ctx, query.String(), federation.JRDContentType+", application/json", &res)
	if err != nil {
		return Info{}, err
	}

	var info Info
	for _, link := range res.Links {
		if isActivityType(link.Type) {
			info.ActorURI = link.Href
		} else if link.Rel == federation.ProfilePageRel {
			info.ProfileURL = link.Href
		}
	}

	info.Account, err = ParseAccount(res.Subject)
	if err != nil {
		return Info{}, fmt.Errorf("%w: subject: %w", federation.ErrFetch, err)
	}
	if info.ActorURI == "" || info.ProfileURL == "" {
		return Info{}, fmt.Errorf("%w: %s: incomplete webfinger response", federation.ErrFetch, resource)
	}
	return info, nil
}

func queryDomain(resource string) (string, error) {
	if strings.HasPrefix(resource, acctPrefix) {
		acct, err := ParseAccount(resource)
		return acct.Domain, err
	}

	u, err := url.Parse(resource)
	if err != nil {
		return "", err
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute uri", resource)
	}
	return u.Host, nil
}

func isActivityType(t string) bool {
	return t == federation.ContentType || t == federation.LDContentType
}

// Render builds the WebFinger response describing a local actor.
func Render(a domain.Actor) Response {
	profile := a.URL
	if profile == "" {
		profile = a.URI
	}

	return Response{
		Subject: Account{Username: username.ToIDNA(a.Username), Domain: a.Domain}.String(),
		Aliases: []string{a.URI, profile},
		Links: []Link{
			{Rel: federation.ProfilePageRel, Type: "text/html", Href: profile},
			{Rel: "self", Type: federation.ContentType, Href: a.URI},
		},
	}
}
