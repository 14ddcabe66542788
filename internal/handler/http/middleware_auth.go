package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
)

// peerAuth is an HTTP middleware that enforces JWT-based peer
// authentication on the peer protocol routes.
//
// It extracts the bearer token from the "Authorization" header, validates it
// with the configured peer secret and issuer via [utils.ValidatePeerToken],
// and on success stores the peer name (the token subject) in the request
// context with [utils.WithPeer] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token signature, issuer, expiry or subject is invalid
//     ([ErrInvalidPeerToken]).
func (h *Handler) peerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidatePeerToken(tokenString, h.app.PeerSecret, h.app.PeerTokenIssuer)
		if err != nil {
			log.Err(fmt.Errorf("%w: %w", ErrInvalidPeerToken, err)).Msg("peer token rejected")
			http.Error(w, ErrInvalidPeerToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPeer(r.Context(), token.Peer)))
	})
}
