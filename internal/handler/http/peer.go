package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
)

func (h *Handler) getSyncpoints(w http.ResponseWriter, r *http.Request) {
	syncpoints, err := h.services.PeerService.GetSyncpoints(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getSyncpoints", err)
		return
	}
	if syncpoints == nil {
		syncpoints = []models.SyncPoint{}
	}

	utils.WriteJSON(w, syncpoints, http.StatusOK)
}

func (h *Handler) getChanges(w http.ResponseWriter, r *http.Request) {
	since, err := sinceFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.getChanges", err)
		return
	}

	changes, err := h.services.PeerService.GetChanges(r.Context(), since)
	if err != nil {
		writeError(w, r, "*Handler.getChanges", err)
		return
	}
	if changes == nil {
		changes = []models.Change{}
	}

	utils.WriteJSON(w, changes, http.StatusOK)
}

func (h *Handler) receiveChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.receiveChanges", bodyError(err))
		return
	}

	origin, err := h.originSource(req.Origin)
	if err != nil {
		writeError(w, r, "*Handler.receiveChanges", err)
		return
	}

	jobID, err := h.services.PeerService.ReceiveChanges(ctx, req, origin)
	if err != nil {
		writeError(w, r, "*Handler.receiveChanges", err)
		return
	}

	peer, _ := utils.GetPeerFromContext(ctx)
	log.Info().Str("func", "*Handler.receiveChanges").
		Str("job_id", jobID).
		Str("peer", peer).
		Str("origin", req.Origin).
		Int("changes", len(req.Changes)).
		Msg("change push accepted")

	utils.WriteJSON(w, models.JobResponse{JobID: jobID}, http.StatusAccepted)
}

// originSource returns a client for the pushing peer, or nil when the push
// carries no origin or no factory is configured.
func (h *Handler) originSource(origin string) (adapter.FileSource, error) {
	if origin == "" || h.foreignServers == nil {
		return nil, nil
	}

	source, err := h.foreignServers.NewForeignServer(origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidForeignURL, err)
	}
	return source, nil
}

func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.getFile", err)
		return
	}

	data, err := h.services.PeerService.GetFile(r.Context(), fileID)
	if err != nil {
		writeError(w, r, "*Handler.getFile", err)
		return
	}

	utils.WriteBytes(w, data, "application/octet-stream", http.StatusOK)
}

func (h *Handler) getThumbnail(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.getThumbnail", err)
		return
	}

	thumbnail, ok, err := h.services.PeerService.GetThumbnail(r.Context(), fileID)
	if err != nil {
		writeError(w, r, "*Handler.getThumbnail", err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	utils.WriteBytes(w, thumbnail, "image/jpeg", http.StatusOK)
}

func (h *Handler) getFileDetail(w http.ResponseWriter, r *http.Request) {
	fileID, err := fileIDFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.getFileDetail", err)
		return
	}

	details, err := h.services.PeerService.GetFileDetails(r.Context(), fileID)
	if err != nil {
		writeError(w, r, "*Handler.getFileDetail", err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}
