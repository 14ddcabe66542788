// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It checks that the local catalog instance is reachable, hands control to
// the terminal UI that triggers and follows a sync pass, and reports the
// final job status.
package client
