// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks catalog requests and peer pushes before they
// reach the services.
//
// Peer input is untrusted: every pushed [models.Change] must carry a known
// kind, a non-empty payload where one is required and an id that matches its
// content.
package validators

import "context"

// Validator validates a value. Field names restrict the check to the named
// parts of the value; without them the whole value is checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
