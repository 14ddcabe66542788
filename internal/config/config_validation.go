// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server relies on at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.PeerSecret != "" && (cfg.App.PeerTokenIssuer == "" || cfg.App.PeerTokenDuration <= 0) {
		return ErrInvalidAppConfigs
	}

	// peers download added files from this address
	if !isPeerReachableURL(cfg.App.AdvertisedURL) {
		return ErrInvalidAppConfigs
	}

	if cfg.App.ThumbnailSize < 0 || cfg.App.MaxBodySize <= 0 {
		return ErrInvalidAppConfigs
	}

	w := cfg.Workers
	if w.ProgressBufferSize <= 0 || w.JobTimeout <= 0 || w.StatusTTL <= 0 || w.MaxTrackedJobs <= 0 || w.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// defaultAdvertisedURL falls back to the listen address when no advertised
// URL is configured. A listen address without a host (":8080") stays
// unusable and fails validation.
func (cfg *StructuredConfig) defaultAdvertisedURL() {
	if cfg.App.AdvertisedURL == "" && cfg.Server.HTTPAddress != "" {
		cfg.App.AdvertisedURL = "http://" + cfg.Server.HTTPAddress
	}
}

func isPeerReachableURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Hostname() != ""
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PollInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
