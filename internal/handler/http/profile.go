package http

import (
	"net/http"
	"strings"

	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/internal/utils"
	"github.com/avetrin/go-folio/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.ProfileService.GetUser(r.Context(), callerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateProfile handles both payload shapes of PUT /api/user: a plain JSON
// body updates the profile fields, a multipart form additionally carries a
// new avatar under the "avatar" part.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		h.updateProfileMultipart(w, r, callerID)
		return
	}

	var user models.User
	if !decodeJSONBody(w, r, &user) {
		return
	}

	updated, err := h.services.ProfileService.UpdateProfile(r.Context(), callerID, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) updateProfileMultipart(w http.ResponseWriter, r *http.Request, callerID int64) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	user := models.User{
		FullName: r.FormValue("fullname"),
		Bio:      r.FormValue("bio"),
	}

	updated, err := h.services.ProfileService.UpdateProfile(ctx, callerID, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// The avatar part is optional. When present it is written after the
	// profile fields so the response reflects the final state.
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()

		upload := service.Upload{
			Body:        file,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Filename:    header.Filename,
		}

		updated, err = h.services.ProfileService.UploadAvatar(ctx, callerID, upload)
		if err != nil {
			respondError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// lookupUsername answers the public profile of a portfolio owner. Visitors
// use it to resolve a handle before loading the full portfolio.
func (h *Handler) lookupUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.services.ProfileService.LookupUsername(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// portfolio aggregates everything a visitor needs to render one portfolio
// page in a single response.
func (h *Handler) portfolio(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	portfolio, err := h.services.ProfileService.Portfolio(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, portfolio, http.StatusOK)
}
