package wellknown

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/state"
	"github.com/sidereusnuntius/commune/internal/username"
	"github.com/sidereusnuntius/commune/internal/webfinger"
)

func Mount(state *state.State, r chi.Router) {
	r.Route("/.well-known/", func(r chi.Router) {
		r.Get("/webfinger", WebfingerEndpoint(state))
	})
}

// WebfingerEndpoint answers for local actors only, given either as an acct: handle on a local domain or by
// their actor uri.
func WebfingerEndpoint(state *state.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource := strings.TrimSpace(r.URL.Query().Get("resource"))
		if resource == "" {
			http.Error(w, "missing resource", http.StatusBadRequest)
			return
		}

		var err error
		var res webfinger.Response
		if strings.HasPrefix(resource, "acct:") {
			res, err = byAccount(r, state, resource)
		} else {
			res, err = byURI(r, state, resource)
		}
		if err != nil {
			http.Error(w, "", handleErr(err))
			return
		}

		w.Header().Set("Content-Type", federation.JRDContentType+"; charset=utf-8")
		if err = json.NewEncoder(w).Encode(res); err != nil {
			log.Error().Err(err).Msg("unable to marshal webfinger response")
		}
	}
}

func byAccount(r *http.Request, state *state.State, resource string) (webfinger.Response, error) {
	acct, err := webfinger.ParseAccount(resource)
	if err != nil {
		return webfinger.Response{}, err
	}
	if !state.Config.IsLocal(acct.Domain) {
		return webfinger.Response{}, db.ErrNotFound
	}

	a, err := state.DB.GetActorByUsernameDomain(r.Context(), username.FromIDNA(acct.Username), state.Config.Domain)
	if err != nil {
		return webfinger.Response{}, err
	}
	if !a.Local {
		return webfinger.Response{}, db.ErrNotFound
	}
	return webfinger.Render(a), nil
}

func byURI(r *http.Request, state *state.State, resource string) (webfinger.Response, error) {
	a, err := state.DB.GetActorByURI(r.Context(), resource)
	if err != nil {
		return webfinger.Response{}, err
	}
	if !a.Local {
		return webfinger.Response{}, db.ErrNotFound
	}
	return webfinger.Render(a), nil
}

func handleErr(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, federation.ErrInvalidForm):
		return http.StatusBadRequest
	default:
		log.Error().Err(err).Msg("webfinger lookup failed")
		return http.StatusInternalServerError
	}
}
