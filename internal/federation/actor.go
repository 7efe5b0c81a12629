package federation

import (
	"encoding/json"
)

// Actor is the remote actor document as fetched from another server.
type Actor struct {
	Context                   any             `json:"@context,omitempty"`
	Type                      string          `json:"type"`
	ID                        string          `json:"id"`
	PreferredUsername         string          `json:"preferredUsername"`
	Name                      string          `json:"name,omitempty"`
	Summary                   string          `json:"summary,omitempty"`
	URL                       json.RawMessage `json:"url,omitempty"`
	Inbox                     string          `json:"inbox"`
	Outbox                    string          `json:"outbox"`
	Followers                 string          `json:"followers,omitempty"`
	Following                 string          `json:"following,omitempty"`
	PublicKey                 *PublicKey      `json:"publicKey,omitempty"`
	Endpoints                 *Endpoints      `json:"endpoints,omitempty"`
	Icon                      json.RawMessage `json:"icon,omitempty"`
	ManuallyApprovesFollowers bool            `json:"manuallyApprovesFollowers,omitempty"`
	Suspended                 bool            `json:"suspended,omitempty"`
}

type PublicKey struct {
	ID           string `json:"id"`
	Owner        string `json:"owner"`
	PublicKeyPem string `json:"publicKeyPem"`
}

type Endpoints struct {
	SharedInbox string `json:"sharedInbox,omitempty"`
}

// MainKeyPem returns the actor's public key, provided the key object is the actor's own primary key:
// owned by the actor and identified as {id}#main-key.
func (a *Actor) MainKeyPem() (string, bool) {
	k := a.PublicKey
	if k == nil || k.Owner != a.ID || k.ID != a.ID+MainKeyFragment || k.PublicKeyPem == "" {
		return "", false
	}
	return k.PublicKeyPem, true
}

// Href extracts a link target from a property that may be a bare string, a Link or Image object carrying
// href or url, or an array of those. The first usable value wins.
func Href(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Href string          `json:"href"`
		URL  json.RawMessage `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Href != "" {
			return obj.Href
		}
		return Href(obj.URL)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if h := Href(item); h != "" {
				return h
			}
		}
	}
	return ""
}
