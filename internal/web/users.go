package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/sidereusnuntius/commune/internal/conversions"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/domain"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/service"
)

type collection int

const (
	outbox collection = iota
	following
)

func writeActivityJSON(w http.ResponseWriter, r *http.Request, doc map[string]any) {
	w.Header().Set("Content-Type", federation.ContentType)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unable to write response")
	}
}

func (h *Handler) localActor(w http.ResponseWriter, r *http.Request, path string) (domain.Actor, bool) {
	a, err := h.service.GetLocalActor(r.Context(), path, chi.URLParam(r, "name"))
	if err != nil {
		handleErr(w, r, err)
		return domain.Actor{}, false
	}
	return a, true
}

func GetActor(h *Handler, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := h.localActor(w, r, path)
		if !ok {
			return
		}

		doc, err := conversions.SerializeActor(a)
		if err != nil {
			handleErr(w, r, err)
			return
		}
		writeActivityJSON(w, r, doc)
	}
}

// Followers serves the followers collection of a local actor, or one of its pages when ?page= is given.
func Followers(h *Handler, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		a, ok := h.localActor(w, r, path)
		if !ok {
			return
		}

		total, err := h.service.CountFollowers(ctx, a)
		if err != nil {
			handleErr(w, r, err)
			return
		}

		var doc map[string]any
		if p := r.URL.Query().Get("page"); p == "" {
			doc, err = conversions.FollowersCollection(a.Followers, total)
		} else {
			page, convErr := strconv.Atoi(p)
			if convErr != nil || int64(page) > total/db.PageSize+1 {
				handleErr(w, r, service.ErrInvalidInput)
				return
			}

			var followers []domain.Actor
			followers, err = h.service.GetFollowers(ctx, a, page)
			if err == nil {
				doc, err = conversions.FollowersPage(a.Followers, page, db.PageSize, total, followers)
			}
		}
		if err != nil {
			handleErr(w, r, err)
			return
		}
		writeActivityJSON(w, r, doc)
	}
}

// EmptyCollection serves the outbox or the following collection of a local actor, both always empty.
func EmptyCollection(h *Handler, path string, c collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := h.localActor(w, r, path)
		if !ok {
			return
		}

		id := a.Outbox
		if c == following {
			id = a.Following
		}
		if id == "" {
			handleErr(w, r, db.ErrNotFound)
			return
		}

		doc, err := conversions.EmptyCollection(id)
		if err != nil {
			handleErr(w, r, err)
			return
		}
		writeActivityJSON(w, r, doc)
	}
}
