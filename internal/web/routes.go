package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/commune/internal/domain"
)

func (h *Handler) Mount(r chi.Router) {
	r.Use(RequestIDMiddleware)
	r.Use(HostMiddleware(h))

	r.Post(SharedInboxRoute, Inbox(h, ""))

	for _, path := range []string{domain.LocalPath(domain.Person), domain.LocalPath(domain.Group)} {
		r.Route("/"+path+"/{name}", func(r chi.Router) {
			r.Get("/", GetActor(h, path))
			r.Post("/inbox", Inbox(h, path))
			r.Get("/outbox", EmptyCollection(h, path, outbox))
			r.Get("/following", EmptyCollection(h, path, following))
			r.Get("/followers", Followers(h, path))
		})
	}
}
