package http

import (
	"errors"
	"net/http"

	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/models"
)

var errorStatusMap = map[error]int{
	models.ErrValidation:               http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidResetCode:        http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrIdentityRequired:        http.StatusUnauthorized,
	service.ErrOwnershipMismatch:       http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrDuplicateRecord:       http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrRecordNotFound:        http.StatusNotFound,

	blob.ErrObjectNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service or store error into an HTTP response.
// Known sentinels answer with their mapped status and public message;
// anything unrecognised collapses to an opaque 500 so internals never leak.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, publicMessage(err), status)
}

// publicMessage returns the matched sentinel's text. Validation errors keep
// their full message: the sentinel wraps a field-level explanation meant for
// the client.
func publicMessage(err error) string {
	if errors.Is(err, models.ErrValidation) || errors.Is(err, service.ErrInvalidDataProvided) {
		return err.Error()
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return http.StatusText(http.StatusInternalServerError)
}
