// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the peer authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the peer auth middleware when
	// the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidPeerToken is returned when the bearer token fails signature,
	// issuer or expiry checks.
	ErrInvalidPeerToken = errors.New("invalid peer token")
)

// Request parameter errors. All of them are answered with 400 Bad Request.
var (
	ErrMissingQueryParam  = errors.New("missing query parameter")
	ErrInvalidFileIDParam = errors.New("file id must be a positive integer")
	ErrInvalidSinceParam  = errors.New("since must be RFC3339 timestamp or `none`")
	ErrInvalidJSON        = errors.New("invalid JSON")
	ErrIntegrityCheck     = errors.New("integrity check failed")
	ErrRequestTooLarge    = errors.New("request body too large")
)
