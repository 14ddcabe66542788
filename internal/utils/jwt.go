package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a peer token carries no subject.
var ErrEmptySubject = errors.New("empty subject error")

// GeneratePeerToken creates a signed HMAC-SHA256 JWT identifying peer.
//
// The token includes the following standard claims:
//   - Issuer    (iss): the shared issuer name of the peer group
//   - Subject   (sub): the peer name, usually its advertised base URL
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if issuer, peer or signKey are empty or tokenDuration is
// zero.
//
//	token, err := utils.GeneratePeerToken("go-photo-catalog", "http://10.0.0.2:8080", time.Minute, "secret")
func GeneratePeerToken(issuer, peer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || peer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   peer,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, Peer: peer}, nil
}

// ValidatePeerToken verifies the signature, issuer and expiry of tokenString
// and returns the token with Peer set from the subject claim.
func ValidatePeerToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, Peer: claims.Subject}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
