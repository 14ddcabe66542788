package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/validators"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidPeerToken:           http.StatusUnauthorized,
	ErrMissingQueryParam:          http.StatusBadRequest,
	ErrInvalidFileIDParam:         http.StatusBadRequest,
	ErrInvalidSinceParam:          http.StatusBadRequest,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrIntegrityCheck:             http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,

	validators.ErrEmptySyncpoint:      http.StatusBadRequest,
	validators.ErrInvalidFileID:       http.StatusBadRequest,
	validators.ErrEmptyTimestamp:      http.StatusBadRequest,
	validators.ErrInvalidChangeKind:   http.StatusBadRequest,
	validators.ErrInvalidUpdateKind:   http.StatusBadRequest,
	validators.ErrUnexpectedUpdate:    http.StatusBadRequest,
	validators.ErrEmptyTag:            http.StatusBadRequest,
	validators.ErrEmptyDate:           http.StatusBadRequest,
	validators.ErrInvalidChangeID:     http.StatusBadRequest,
	validators.ErrInvalidExtension:    http.StatusBadRequest,
	validators.ErrEmptyFileContent:    http.StatusBadRequest,
	validators.ErrInvalidRemovedFiles: http.StatusBadRequest,
	validators.ErrUnsupportedType:     http.StatusInternalServerError,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidForeignURL:   http.StatusBadRequest,
	service.ErrNoSuchTag:           http.StatusNotFound,
	service.ErrFileIsRemoved:       http.StatusConflict,
	service.ErrSyncAlreadyRunning:  http.StatusConflict,

	store.ErrNoSuchFileInDatabase: http.StatusNotFound,
	store.ErrFileContentNotFound:  http.StatusNotFound,
	store.ErrFileAlreadyExists:    http.StatusConflict,

	workers.ErrNoSuchJobID:    http.StatusNotFound,
	workers.ErrTrackerStopped: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Internal errors
// are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Send()
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Send()
	http.Error(w, err.Error(), status)
}
