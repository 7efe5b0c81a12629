package conversions

import (
	"fmt"
	"net/url"
	"strconv"

	"code.superseriousbusiness.org/activity/streams"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/username"
)

// iris parses a run of IRIs, keeping the first error.
type iris struct {
	err error
}

func (p *iris) parse(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid iri %q: %w", s, err)
	}
	return u
}

func newAccountable(kind domain.ActorKind) Accountable {
	switch kind {
	case domain.Group:
		return streams.NewActivityStreamsGroup()
	case domain.Service:
		return streams.NewActivityStreamsService()
	case domain.Application:
		return streams.NewActivityStreamsApplication()
	default:
		return streams.NewActivityStreamsPerson()
	}
}

// ActorToAS renders a local actor as an ActivityStreams actor of the matching type.
func ActorToAS(a domain.Actor) (Accountable, error) {
	var p iris
	obj := newAccountable(a.Kind)

	id := streams.NewJSONLDIdProperty()
	id.SetIRI(p.parse(a.URI))
	obj.SetJSONLDId(id)

	name := streams.NewActivityStreamsPreferredUsernameProperty()
	name.SetXMLSchemaString(username.ToIDNA(a.Username))
	obj.SetActivityStreamsPreferredUsername(name)

	if a.Name != "" {
		display := streams.NewActivityStreamsNameProperty()
		display.AppendXMLSchemaString(a.Name)
		obj.SetActivityStreamsName(display)
	}

	if a.Summary != "" {
		summary := streams.NewActivityStreamsSummaryProperty()
		summary.AppendXMLSchemaString(a.Summary)
		obj.SetActivityStreamsSummary(summary)
	}

	profile := a.URL
	if profile == "" {
		profile = a.URI
	}
	u := streams.NewActivityStreamsUrlProperty()
	u.AppendIRI(p.parse(profile))
	obj.SetActivityStreamsUrl(u)

	inbox := streams.NewActivityStreamsInboxProperty()
	inbox.SetIRI(p.parse(a.Inbox))
	obj.SetActivityStreamsInbox(inbox)

	outbox := streams.NewActivityStreamsOutboxProperty()
	outbox.SetIRI(p.parse(a.Outbox))
	obj.SetActivityStreamsOutbox(outbox)

	if a.Followers != "" {
		followers := streams.NewActivityStreamsFollowersProperty()
		followers.SetIRI(p.parse(a.Followers))
		obj.SetActivityStreamsFollowers(followers)
	}

	if a.Following != "" {
		following := streams.NewActivityStreamsFollowingProperty()
		following.SetIRI(p.parse(a.Following))
		obj.SetActivityStreamsFollowing(following)
	}

	if a.AvatarURL != "" {
		image := streams.NewActivityStreamsImage()
		imageURL := streams.NewActivityStreamsUrlProperty()
		imageURL.AppendIRI(p.parse(a.AvatarURL))
		image.SetActivityStreamsUrl(imageURL)

		icon := streams.NewActivityStreamsIconProperty()
		icon.AppendActivityStreamsImage(image)
		obj.SetActivityStreamsIcon(icon)
	}

	locked := streams.NewActivityStreamsManuallyApprovesFollowersProperty()
	locked.Set(a.Locked)
	obj.SetActivityStreamsManuallyApprovesFollowers(locked)

	key := streams.NewW3IDSecurityV1PublicKey()
	keyID := streams.NewJSONLDIdProperty()
	keyID.SetIRI(p.parse(a.KeyID()))
	key.SetJSONLDId(keyID)

	owner := streams.NewW3IDSecurityV1OwnerProperty()
	owner.SetIRI(p.parse(a.URI))
	key.SetW3IDSecurityV1Owner(owner)

	keyPem := streams.NewW3IDSecurityV1PublicKeyPemProperty()
	keyPem.Set(a.PublicKeyPem)
	key.SetW3IDSecurityV1PublicKeyPem(keyPem)

	keyProp := streams.NewW3IDSecurityV1PublicKeyProperty()
	keyProp.AppendW3IDSecurityV1PublicKey(key)
	obj.SetW3IDSecurityV1PublicKey(keyProp)

	if p.err != nil {
		return nil, p.err
	}
	return obj, nil
}

// SerializeActor renders a local actor document. sharedInbox and suspended have no typed property, so they
// are added to the serialized form.
func SerializeActor(a domain.Actor) (map[string]any, error) {
	obj, err := ActorToAS(a)
	if err != nil {
		return nil, err
	}

	m, err := streams.Serialize(obj)
	if err != nil {
		return nil, err
	}

	if a.SharedInbox != "" {
		m["endpoints"] = map[string]any{"sharedInbox": a.SharedInbox}
	}
	m["suspended"] = a.Suspended
	return m, nil
}

func pageIRI(collection string, page int) string {
	return collection + "?page=" + strconv.Itoa(page)
}

// FollowersCollection renders the root of a followers collection, which only points at its first page.
func FollowersCollection(id string, total int64) (map[string]any, error) {
	var p iris
	coll := streams.NewActivityStreamsOrderedCollection()

	idProp := streams.NewJSONLDIdProperty()
	idProp.SetIRI(p.parse(id))
	coll.SetJSONLDId(idProp)

	totalItems := streams.NewActivityStreamsTotalItemsProperty()
	totalItems.Set(int(total))
	coll.SetActivityStreamsTotalItems(totalItems)

	first := streams.NewActivityStreamsFirstProperty()
	first.SetIRI(p.parse(pageIRI(id, 1)))
	coll.SetActivityStreamsFirst(first)

	if p.err != nil {
		return nil, p.err
	}
	return streams.Serialize(coll)
}

// FollowersPage renders page number page of a followers collection holding total accepted followers.
func FollowersPage(id string, page, pageSize int, total int64, followers []domain.Actor) (map[string]any, error) {
	var p iris
	coll := streams.NewActivityStreamsOrderedCollectionPage()

	idProp := streams.NewJSONLDIdProperty()
	idProp.SetIRI(p.parse(pageIRI(id, page)))
	coll.SetJSONLDId(idProp)

	partOf := streams.NewActivityStreamsPartOfProperty()
	partOf.SetIRI(p.parse(id))
	coll.SetActivityStreamsPartOf(partOf)

	totalItems := streams.NewActivityStreamsTotalItemsProperty()
	totalItems.Set(int(total))
	coll.SetActivityStreamsTotalItems(totalItems)

	if len(followers) > 0 {
		items := streams.NewActivityStreamsOrderedItemsProperty()
		for _, f := range followers {
			items.AppendIRI(p.parse(f.URI))
		}
		coll.SetActivityStreamsOrderedItems(items)
	}

	if lastPage := (total + int64(pageSize) - 1) / int64(pageSize); int64(page) < lastPage {
		next := streams.NewActivityStreamsNextProperty()
		next.SetIRI(p.parse(pageIRI(id, page+1)))
		coll.SetActivityStreamsNext(next)
	}

	if page > 1 {
		prev := streams.NewActivityStreamsPrevProperty()
		prev.SetIRI(p.parse(pageIRI(id, page-1)))
		coll.SetActivityStreamsPrev(prev)
	}

	if p.err != nil {
		return nil, p.err
	}

	m, err := streams.Serialize(coll)
	if err != nil {
		return nil, err
	}
	if len(followers) == 0 {
		m["orderedItems"] = []any{}
	}
	return m, nil
}

// EmptyCollection renders an OrderedCollection with no items. Outboxes and following collections are served
// this way, since outbound activities are not published.
func EmptyCollection(id string) (map[string]any, error) {
	var p iris
	coll := streams.NewActivityStreamsOrderedCollection()

	idProp := streams.NewJSONLDIdProperty()
	idProp.SetIRI(p.parse(id))
	coll.SetJSONLDId(idProp)

	totalItems := streams.NewActivityStreamsTotalItemsProperty()
	totalItems.Set(0)
	coll.SetActivityStreamsTotalItems(totalItems)

	if p.err != nil {
		return nil, p.err
	}

	m, err := streams.Serialize(coll)
	if err != nil {
		return nil, err
	}
	m["orderedItems"] = []any{}
	return m, nil
}
