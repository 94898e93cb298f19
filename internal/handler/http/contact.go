package http

import (
	"net/http"

	"github.com/avetrin/go-folio/internal/utils"
	"github.com/avetrin/go-folio/models"
)

type contactRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// submitContact accepts a visitor message addressed to a portfolio owner by
// username. The route is public; the addressed owner becomes the message's
// owner, never the (absent) caller.
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contactRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	created, err := h.services.ContactService.Submit(ctx, req.Username, message)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	messages, err := h.services.ContactService.List(r.Context(), callerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) deleteContactMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}
	recordID, ok := recordIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), callerID, recordID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
