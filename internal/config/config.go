// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-photo-catalog application. It aggregates all sub-configurations and is
// populated by merging defaults with values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: peer authentication, request
	// hashing, the advertised URL and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the catalog database and the
	// directory that keeps file bytes and thumbnails.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for outbound HTTP calls: to foreign peers and,
	// for the sync client, to the local instance.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background job tracker.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the catalog database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for file bytes.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// HashKey is the HMAC key used for change push integrity checking
	// (the hash field of pushed changes). Empty disables hashing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// PeerSecret signs and verifies the JWT tokens exchanged between peers.
	// Empty disables peer authentication.
	// Env: APP_PEER_SECRET
	PeerSecret string `env:"PEER_SECRET"`

	// PeerTokenIssuer is the "iss" claim of peer tokens.
	// Env: APP_PEER_TOKEN_ISSUER
	PeerTokenIssuer string `env:"PEER_TOKEN_ISSUER"`

	// PeerTokenDuration is the lifetime of a peer token (e.g. "5m").
	// Env: APP_PEER_TOKEN_DURATION
	PeerTokenDuration time.Duration `env:"PEER_TOKEN_DURATION"`

	// AdvertisedURL is the base URL under which peers can reach this
	// instance. It is sent along with pushed changes so the receiver can
	// download added files.
	// Env: APP_ADVERTISED_URL
	AdvertisedURL string `env:"ADVERTISED_URL"`

	// ThumbnailSize is the bounding box, in pixels, of generated thumbnails.
	// Env: APP_THUMBNAIL_SIZE
	ThumbnailSize int `env:"THUMBNAIL_SIZE"`

	// MaxBodySize caps, in bytes, the decoded body of an inbound request:
	// uploads and change pushes.
	// Env: APP_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the catalog database.
type DB struct {
	// DSN selects the backend: a postgres:// URL for PostgreSQL, otherwise a
	// SQLite file path (e.g. "catalog.db" or ":memory:").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the file store.
type Files struct {
	// Dir is the directory where file bytes and thumbnails are kept.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Adapter holds configuration for outbound HTTP calls.
type Adapter struct {
	// HTTPAddress is the base URL of the local instance, used by the sync
	// client (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ForeignURL is the peer the sync client asks the local instance to
	// synchronize with.
	// Env: ADAPTER_FOREIGN_URL
	ForeignURL string `env:"FOREIGN_URL"`

	// PollInterval is how often the sync client polls job progress.
	// Env: ADAPTER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Workers holds configuration for the background job tracker.
type Workers struct {
	// ProgressBufferSize is the capacity of the progress event channel.
	// Env: WORKERS_PROGRESS_BUFFER_SIZE
	ProgressBufferSize int `env:"PROGRESS_BUFFER_SIZE"`

	// JobTimeout is the deadline of a single sync or apply job.
	// Env: WORKERS_JOB_TIMEOUT
	JobTimeout time.Duration `env:"JOB_TIMEOUT"`

	// StatusTTL is how long a job status is kept after its last update.
	// Env: WORKERS_STATUS_TTL
	StatusTTL time.Duration `env:"STATUS_TTL"`

	// MaxTrackedJobs caps the number of kept job statuses.
	// Env: WORKERS_MAX_TRACKED_JOBS
	MaxTrackedJobs int `env:"MAX_TRACKED_JOBS"`

	// SweepInterval is how often expired statuses are evicted.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// defaultConfig is the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PeerTokenIssuer:   "go-photo-catalog",
			PeerTokenDuration: 5 * time.Minute,
			ThumbnailSize:     256,
			MaxBodySize:       64 << 20,
		},
		Storage: Storage{
			DB:    DB{DSN: "catalog.db"},
			Files: Files{Dir: "files"},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			PollInterval:   500 * time.Millisecond,
		},
		Workers: Workers{
			ProgressBufferSize: 256,
			JobTimeout:         30 * time.Minute,
			StatusTTL:          time.Hour,
			MaxTrackedJobs:     1024,
			SweepInterval:      time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
