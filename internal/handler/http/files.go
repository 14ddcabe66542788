package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	extension, err := requiredQueryParam(r, "extension")
	if err != nil {
		writeError(w, r, "*Handler.addFile", err)
		return
	}

	data, err := io.ReadAll(r.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, r, "*Handler.addFile", bodyError(err))
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.addFile").Msg("failed to read request body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	file, err := h.services.CatalogService.AddFile(r.Context(), models.UploadRequest{Extension: extension, Data: data})
	if err != nil {
		writeError(w, r, "*Handler.addFile", err)
		return
	}

	utils.WriteJSON(w, file, http.StatusCreated)
}

func (h *Handler) getCatalogFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.getCatalogFile", err)
		return
	}

	file, err := h.services.CatalogService.GetFile(r.Context(), fileID)
	if err != nil {
		writeError(w, r, "*Handler.getCatalogFile", err)
		return
	}

	utils.WriteJSON(w, file, http.StatusOK)
}

func (h *Handler) removeFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.removeFile", err)
		return
	}

	if err = h.services.CatalogService.RemoveFile(r.Context(), fileID); err != nil {
		writeError(w, r, "*Handler.removeFile", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addTag(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.addTag", err)
		return
	}

	var req models.TagRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.addTag", bodyError(err))
		return
	}

	if err = h.services.CatalogService.AddTag(r.Context(), fileID, req); err != nil {
		writeError(w, r, "*Handler.addTag", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeTag(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.removeTag", err)
		return
	}

	tag, err := url.PathUnescape(chi.URLParam(r, "tag"))
	if err != nil {
		writeError(w, r, "*Handler.removeTag", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	req := models.TagRequest{Tag: tag}
	if err = h.services.CatalogService.RemoveTag(r.Context(), fileID, req); err != nil {
		writeError(w, r, "*Handler.removeTag", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setCreationDate(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromURL(r)
	if err != nil {
		writeError(w, r, "*Handler.setCreationDate", err)
		return
	}

	var req models.CreationDateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setCreationDate", bodyError(err))
		return
	}

	if err = h.services.CatalogService.SetCreationDate(r.Context(), fileID, req); err != nil {
		writeError(w, r, "*Handler.setCreationDate", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
