package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/internal/utils"
	"github.com/avetrin/go-folio/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps the in-memory portion of multipart parsing for
// certificate documents and avatars. Larger files spill to temp storage.
const maxUploadBytes = 16 << 20

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	certificates, err := h.services.CertificateService.List(r.Context(), callerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, certificates, http.StatusOK)
}

// uploadCertificate accepts a multipart form with the certificate metadata
// fields and the document itself under the "file" part. The record and the
// blob are created together or not at all.
func (h *Handler) uploadCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing certificate file")
		http.Error(w, "certificate file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	certificate := &models.Certificate{
		Title:  r.FormValue("title"),
		Issuer: r.FormValue("issuer"),
		Date:   r.FormValue("date"),
	}

	upload := service.Upload{
		Body:        file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}

	created, err := h.services.CertificateService.Upload(ctx, callerID, certificate, upload)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateCertificate replaces the metadata of an owned certificate. The
// stored document is untouched; file fields in the payload are ignored.
func (h *Handler) updateCertificate(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}
	recordID, ok := recordIDFromRequest(w, r)
	if !ok {
		return
	}

	certificate := &models.Certificate{}
	if !decodeJSONBody(w, r, certificate) {
		return
	}

	updated, err := h.services.CertificateService.Update(r.Context(), callerID, recordID, certificate)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCertificate(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerIDFromRequest(w, r)
	if !ok {
		return
	}
	recordID, ok := recordIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CertificateService.Delete(r.Context(), callerID, recordID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// certificateFile streams a certificate document to an unauthenticated
// visitor. Object keys are unguessable UUIDs, which is what makes the route
// safe to leave public.
func (h *Handler) certificateFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fileKey := chi.URLParam(r, "key")
	if fileKey == "" {
		http.Error(w, "file key is required", http.StatusBadRequest)
		return
	}

	object, err := h.services.CertificateService.GetFile(ctx, fileKey)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer object.Body.Close()

	if object.ContentType != "" {
		w.Header().Set("Content-Type", object.ContentType)
	}
	if object.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(object.Size, 10))
	}
	w.Header().Set("Content-Disposition", "inline")

	if _, err := io.Copy(w, object.Body); err != nil {
		log.Err(err).Str("file_key", fileKey).Msg("streaming certificate document failed")
	}
}
