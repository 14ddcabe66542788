// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, peer token generation
// and validation, clocks and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PeerCtxKey is the key used to store the authenticated peer name in the
// context. The peer auth middleware writes it after validating the bearer
// token.
//
//	ctx := context.WithValue(ctx, utils.PeerCtxKey, "http://10.0.0.3:8080")
var PeerCtxKey = contextKey("peer")

// GetPeerFromContext retrieves the authenticated peer from the context.
//
// Returns the peer name and an ok flag:
//   - ok == true: value is found and is a non-empty string;
//   - ok == false: value is missing, empty or has an unexpected type.
func GetPeerFromContext(ctx context.Context) (string, bool) {
	peer, ok := ctx.Value(PeerCtxKey).(string)
	return peer, ok && peer != ""
}

// WithPeer returns a copy of ctx carrying peer.
func WithPeer(ctx context.Context, peer string) context.Context {
	return context.WithValue(ctx, PeerCtxKey, peer)
}
