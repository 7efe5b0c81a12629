package gateway

import (
	"fmt"

	"github.com/sidereusnuntius/commune/internal/federation"
)

// objectIRI returns the object of a, which must be a bare IRI.
func objectIRI(a *federation.Activity) (string, error) {
	if a.Object.IsZero() {
		return "", fmt.Errorf("%w: object", federation.ErrMissingProperty)
	}

	iri, ok := a.Object.IRI()
	if !ok {
		return "", fmt.Errorf("%w: %s object must be an iri", federation.ErrUnprocessablePropValue, a.Type)
	}
	return iri, nil
}

// objectActivity returns the object of a, which must be an activity performed by the same actor.
func objectActivity(a *federation.Activity) (*federation.Activity, error) {
	nested, err := a.Object.Activity()
	if err != nil {
		return nil, err
	}

	if nested.Actor != "" && nested.Actor != a.Actor {
		return nil, fmt.Errorf("%w: %s of an activity by %s", federation.ErrNotAuthenticated, a.Type, nested.Actor)
	}
	return nested, nil
}
