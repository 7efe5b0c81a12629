package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/sidereusnuntius/commune/internal/federation"
)

// Inbox receives activities. path is empty for the shared inbox; otherwise the inbox belongs to the local
// actor named in the route, which must exist.
func Inbox(h *Handler, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.Config.Federation.MaxBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		actor, err := h.authenticate(r, body)
		if err != nil {
			handleErr(w, r, err)
			return
		}

		if path != "" {
			if _, err = h.service.GetLocalActor(ctx, path, chi.URLParam(r, "name")); err != nil {
				handleErr(w, r, err)
				return
			}
		}

		activity, err := federation.DecodeActivity(body)
		if err != nil {
			handleErr(w, r, err)
			return
		}

		zerolog.Ctx(ctx).Debug().
			Str("actor", actor.URI).
			Str("type", activity.Type).
			Str("id", activity.ID).
			Msg("inbox activity")

		if err = h.gateway.Process(ctx, actor, activity); err != nil {
			handleErr(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
