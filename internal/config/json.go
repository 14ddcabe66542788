package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version           string   `json:"version"`
		HashKey           string   `json:"hash_key"`
		PeerSecret        string   `json:"peer_secret"`
		PeerTokenIssuer   string   `json:"peer_token_issuer"`
		PeerTokenDuration Duration `json:"peer_token_duration"`
		AdvertisedURL     string   `json:"advertised_url"`
		ThumbnailSize     int      `json:"thumbnail_size"`
		MaxBodySize       int64    `json:"max_body_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir string `json:"dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ForeignURL     string   `json:"foreign_url"`
		PollInterval   Duration `json:"poll_interval"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ProgressBufferSize int      `json:"progress_buffer_size"`
		JobTimeout         Duration `json:"job_timeout"`
		StatusTTL          Duration `json:"status_ttl"`
		MaxTrackedJobs     int      `json:"max_tracked_jobs"`
		SweepInterval      Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			HashKey:           jsonCfg.App.HashKey,
			PeerSecret:        jsonCfg.App.PeerSecret,
			PeerTokenIssuer:   jsonCfg.App.PeerTokenIssuer,
			PeerTokenDuration: time.Duration(jsonCfg.App.PeerTokenDuration),
			AdvertisedURL:     jsonCfg.App.AdvertisedURL,
			ThumbnailSize:     jsonCfg.App.ThumbnailSize,
			MaxBodySize:       jsonCfg.App.MaxBodySize,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Dir: jsonCfg.Storage.Files.Dir,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ForeignURL:     jsonCfg.Adapter.ForeignURL,
			PollInterval:   time.Duration(jsonCfg.Adapter.PollInterval),
		},
		Workers: Workers{
			ProgressBufferSize: jsonCfg.Workers.ProgressBufferSize,
			JobTimeout:         time.Duration(jsonCfg.Workers.JobTimeout),
			StatusTTL:          time.Duration(jsonCfg.Workers.StatusTTL),
			MaxTrackedJobs:     jsonCfg.Workers.MaxTrackedJobs,
			SweepInterval:      time.Duration(jsonCfg.Workers.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
