package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
)

func (h *Handler) startSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	foreignURL, err := requiredQueryParam(r, "foreign_url")
	if err != nil {
		writeError(w, r, "*Handler.startSync", err)
		return
	}

	jobID, err := h.services.SyncService.StartSync(r.Context(), foreignURL)
	if err != nil {
		writeError(w, r, "*Handler.startSync", err)
		return
	}

	log.Info().Str("func", "*Handler.startSync").
		Str("job_id", jobID).
		Str("foreign_url", foreignURL).
		Msg("sync started")

	utils.WriteJSON(w, models.JobResponse{JobID: jobID}, http.StatusAccepted)
}

func (h *Handler) getSyncProgress(w http.ResponseWriter, r *http.Request) {
	jobID, err := requiredQueryParam(r, "job_id")
	if err != nil {
		writeError(w, r, "*Handler.getSyncProgress", err)
		return
	}

	status, err := h.services.SyncService.Progress(r.Context(), jobID)
	if err != nil {
		writeError(w, r, "*Handler.getSyncProgress", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
