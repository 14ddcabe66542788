package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/go-chi/chi/v5"
)

// sinceNone asks for the whole changelog.
const sinceNone = "none"

func requiredQueryParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingQueryParam, name)
	}
	return value, nil
}

func parseFileID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFileIDParam, raw)
	}
	return id, nil
}

// fileIDFromQuery reads the file_id query parameter of the peer protocol.
func fileIDFromQuery(r *http.Request) (int64, error) {
	raw, err := requiredQueryParam(r, "file_id")
	if err != nil {
		return 0, err
	}
	return parseFileID(raw)
}

// fileIDFromURL reads the {id} segment of the catalog API.
func fileIDFromURL(r *http.Request) (int64, error) {
	return parseFileID(chi.URLParam(r, "id"))
}

// sinceFromQuery returns nil for a missing or `none` since parameter.
func sinceFromQuery(r *http.Request) (*models.SyncPoint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("since"))
	if raw == "" || raw == sinceNone {
		return nil, nil
	}

	lastChange, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSinceParam, raw)
	}

	since := models.NewSyncPoint(lastChange)
	return &since, nil
}
