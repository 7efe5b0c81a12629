package conversions

import (
	"fmt"

	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/username"
	"github.com/sidereusnuntius/commune/internal/validate"
)

// RemoteActor turns a fetched actor document into a record for storage, with its domain set to host. Any
// problem with the document is reported as federation.ErrInvalidForm.
func RemoteActor(doc *federation.Actor, host string) (domain.Actor, error) {
	urls := []struct {
		name     string
		value    string
		required bool
	}{
		{"id", doc.ID, true},
		{"inbox", doc.Inbox, true},
		{"outbox", doc.Outbox, true},
		{"url", federation.Href(doc.URL), false},
		{"followers", doc.Followers, false},
		{"following", doc.Following, false},
	}
	for _, u := range urls {
		if u.value == "" {
			if u.required {
				return domain.Actor{}, fmt.Errorf("%w: %s", federation.ErrMissingProperty, u.name)
			}
			continue
		}
		if err := validate.AbsoluteURL(u.value); err != nil {
			return domain.Actor{}, fmt.Errorf("%w: %s: %w", federation.ErrUnprocessablePropValue, u.name, err)
		}
	}

	if doc.PreferredUsername == "" {
		return domain.Actor{}, fmt.Errorf("%w: preferredUsername", federation.ErrMissingProperty)
	}
	name := username.FromIDNA(doc.PreferredUsername)
	if err := validate.NoControl(name); err != nil {
		return domain.Actor{}, fmt.Errorf("%w: preferredUsername: %w", federation.ErrUnprocessablePropValue, err)
	}

	keyPem, ok := doc.MainKeyPem()
	if !ok {
		return domain.Actor{}, fmt.Errorf("%w: publicKey must be owned by the actor and named %s%s",
			federation.ErrInvalidForm, doc.ID, federation.MainKeyFragment)
	}

	a := domain.Actor{
		URI:          doc.ID,
		URL:          federation.Href(doc.URL),
		Kind:         domain.ParseActorKind(doc.Type),
		Username:     name,
		Domain:       host,
		Name:         doc.Name,
		Summary:      doc.Summary,
		Inbox:        doc.Inbox,
		Outbox:       doc.Outbox,
		Followers:    doc.Followers,
		Following:    doc.Following,
		PublicKeyPem: keyPem,
		Lang:         "und",
		Locked:       doc.ManuallyApprovesFollowers,
		Suspended:    doc.Suspended,
	}
	if doc.Endpoints != nil && validate.AbsoluteURL(doc.Endpoints.SharedInbox) == nil {
		a.SharedInbox = doc.Endpoints.SharedInbox
	}
	if avatar := federation.Href(doc.Icon); validate.AbsoluteURL(avatar) == nil {
		a.AvatarURL = avatar
	}
	return a, nil
}
