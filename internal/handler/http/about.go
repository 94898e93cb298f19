package http

import (
	"net/http"

	"github.com/avetrin/go-folio/internal/utils"
	"github.com/avetrin/go-folio/models"
)

func (h *Handler) getAbout(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	about, err := h.services.AboutService.Get(r.Context(), callerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, about, http.StatusOK)
}

// putAbout replaces the caller's about document, creating it on first use.
func (h *Handler) putAbout(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	about := &models.About{}
	if !decodeJSONBody(w, r, about) {
		return
	}

	saved, err := h.services.AboutService.Put(r.Context(), callerID, about)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}
