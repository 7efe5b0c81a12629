package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/federation"
	"github.com/sidereusnuntius/commune/internal/service"
)

// handleErr writes the status matching err. Authentication failures all look the same to the client.
func handleErr(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var status int
	switch {
	case errors.Is(err, federation.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, federation.ErrInvalidForm), errors.Is(err, federation.ErrUnsupported):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	http.Error(w, http.StatusText(status), status)
}
