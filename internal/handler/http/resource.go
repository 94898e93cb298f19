// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/internal/utils"
	"github.com/avetrin/go-folio/models"
	"github.com/go-chi/chi/v5"
)

// resourceHandler serves the uniform CRUD surface of one owner-scoped
// resource collection. Skills, experiences, and projects differ only in
// their record type; everything else (decoding, identity, status mapping)
// is identical and lives here once.
type resourceHandler[T models.Owned] struct {
	service   service.RecordService[T]
	newRecord func() T
}

func newResourceHandler[T models.Owned](svc service.RecordService[T], newRecord func() T) *resourceHandler[T] {
	return &resourceHandler[T]{
		service:   svc,
		newRecord: newRecord,
	}
}

func (rh *resourceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	records, err := rh.service.List(r.Context(), callerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (rh *resourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	record := rh.newRecord()
	if !decodeJSONBody(w, r, record) {
		return
	}

	created, err := rh.service.Create(r.Context(), callerID, record)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (rh *resourceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}
	recordID, ok := recordIDFromRequest(w, r)
	if !ok {
		return
	}

	record, err := rh.service.Get(r.Context(), callerID, recordID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (rh *resourceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}
	recordID, ok := recordIDFromRequest(w, r)
	if !ok {
		return
	}

	record := rh.newRecord()
	if !decodeJSONBody(w, r, record) {
		return
	}

	updated, err := rh.service.Update(r.Context(), callerID, recordID, record)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (rh *resourceHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}
	recordID, ok := recordIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := rh.service.Delete(r.Context(), callerID, recordID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// callerIDFromRequest extracts the authenticated user id stored in the
// request context by the auth middleware. A missing id on an authed route
// means the middleware was bypassed; answer 401, never fall back to any
// client-supplied identity.
func callerIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || callerID <= 0 {
		logger.FromRequest(r).Error().Msg("no caller identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}

	return callerID, true
}

func recordIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	recordID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || recordID <= 0 {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return 0, false
	}

	return recordID, true
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}

	return true
}
