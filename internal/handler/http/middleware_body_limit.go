package http

import (
	"errors"
	"fmt"
	"net/http"
)

const defaultMaxBodySize int64 = 64 << 20

func (h *Handler) maxBodySize() int64 {
	if h.app.MaxBodySize <= 0 {
		return defaultMaxBodySize
	}
	return h.app.MaxBodySize
}

// bodyError classifies a failure to read or decode a request body. Bodies
// over the limit set by middleware.RequestSize surface as
// *http.MaxBytesError.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
