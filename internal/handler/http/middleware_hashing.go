package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
)

// changesHashing verifies the hash field of a change push against an HMAC of
// its payload. It is a pass-through when no hash key is configured.
func (h *Handler) changesHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.app.HashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.changesHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, "*Handler.changesHashing", bodyError(err))
			return
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.changesHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.ChangesRequest
		if err = json.Unmarshal(body, &req); err != nil {
			log.Err(err).Str("func", "*Handler.changesHashing").Msg("failed to decode JSON")
			http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
			return
		}

		payload, err := req.HashPayload()
		if err != nil {
			log.Err(err).Str("func", "*Handler.changesHashing").Msg("failed to marshal hash payload")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		hashedBody := utils.HashHex(payload)
		if !utils.EqualHex(hashedBody, req.Hash) {
			log.Error().Str("func", "*Handler.changesHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, ErrIntegrityCheck.Error(), http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.changesHashing").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
