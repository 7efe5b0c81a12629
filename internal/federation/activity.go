package federation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity is the envelope of an inbound activity.
type Activity struct {
	Context   any    `json:"@context,omitempty"`
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	Actor     string `json:"actor"`
	Object    Object `json:"object"`
	Published string `json:"published,omitempty"`
	To        any    `json:"to,omitempty"`
	Cc        any    `json:"cc,omitempty"`
}

func (a *Activity) Kind() Kind {
	return ParseKind(a.Type)
}

// DecodeActivity decodes an activity document. Only the envelope is decoded; the object is kept raw until
// asked for.
func DecodeActivity(body []byte) (Activity, error) {
	var a Activity
	if err := json.Unmarshal(body, &a); err != nil {
		return a, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if a.Type == "" {
		return a, fmt.Errorf("%w: type", ErrMissingProperty)
	}
	if a.Actor == "" {
		return a, fmt.Errorf("%w: actor", ErrMissingProperty)
	}
	return a, nil
}

// Object is the object property of an activity. It is either a bare IRI or a nested activity, and is
// decoded only when one of the two shapes is requested.
type Object struct {
	raw json.RawMessage
}

func IRIObject(iri string) Object {
	raw, _ := json.Marshal(iri)
	return Object{raw: raw}
}

func ActivityObject(a Activity) (Object, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return Object{}, err
	}
	return Object{raw: raw}, nil
}

func (o *Object) UnmarshalJSON(b []byte) error {
	o.raw = append(o.raw[:0], b...)
	return nil
}

func (o Object) MarshalJSON() ([]byte, error) {
	if len(o.raw) == 0 {
		return []byte("null"), nil
	}
	return o.raw, nil
}

func (o Object) IsZero() bool {
	return len(o.raw) == 0 || bytes.Equal(o.raw, []byte("null"))
}

// IRI returns the object as a bare IRI. ok is false when the object is absent, empty or not a string.
func (o Object) IRI() (iri string, ok bool) {
	if o.IsZero() {
		return "", false
	}
	if err := json.Unmarshal(o.raw, &iri); err != nil {
		return "", false
	}
	return iri, iri != ""
}

// Activity decodes the object as a nested activity.
func (o Object) Activity() (*Activity, error) {
	if o.IsZero() {
		return nil, fmt.Errorf("%w: object", ErrMissingProperty)
	}

	var a Activity
	if err := json.Unmarshal(o.raw, &a); err != nil {
		return nil, fmt.Errorf("%w: object is not an activity: %w", ErrInvalidForm, err)
	}
	if a.Type == "" {
		return nil, fmt.Errorf("%w: object type", ErrMissingProperty)
	}
	return &a, nil
}
