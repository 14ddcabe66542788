package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s local instance address used by the sync client
//	-f file storage directory
//	-d database DSN
//	-c/-config json file path with configs
//	-hash-key change push hash key
//	-peer-secret peer token signing key
//	-peer-token-issuer peer token issuer
//	-peer-token-duration peer token duration (e.g., "5m")
//	-advertised-url base URL peers use to reach this instance
//	-foreign-url peer to synchronize with (sync client)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-job-timeout deadline of a single job
//	-status-ttl how long job statuses are kept
//	-max-jobs maximum number of kept job statuses
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var localAddress string
	var fileStorageDir string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var peerSecret string
	var peerTokenIssuer string
	var peerTokenDuration time.Duration
	var advertisedURL string
	var foreignURL string
	var requestTimeout time.Duration
	var jobTimeout time.Duration
	var statusTTL time.Duration
	var maxJobs int

	fs := flag.NewFlagSet("go-photo-catalog", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&localAddress, "s", "", "Local instance address used by the sync client")
	fs.StringVar(&fileStorageDir, "f", "", "File storage directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Change push hash key")
	fs.StringVar(&peerSecret, "peer-secret", "", "Peer token signing key")
	fs.StringVar(&peerTokenIssuer, "peer-token-issuer", "", "Peer token issuer")
	fs.DurationVar(&peerTokenDuration, "peer-token-duration", 0, "Peer token duration (e.g., 5m)")
	fs.StringVar(&advertisedURL, "advertised-url", "", "Base URL peers use to reach this instance")
	fs.StringVar(&foreignURL, "foreign-url", "", "Peer to synchronize with")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&jobTimeout, "job-timeout", 0, "Job timeout (e.g., 30m)")
	fs.DurationVar(&statusTTL, "status-ttl", 0, "Job status TTL (e.g., 1h)")
	fs.IntVar(&maxJobs, "max-jobs", 0, "Maximum number of tracked jobs")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:           hashKey,
			PeerSecret:        peerSecret,
			PeerTokenIssuer:   peerTokenIssuer,
			PeerTokenDuration: peerTokenDuration,
			AdvertisedURL:     advertisedURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Dir: fileStorageDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    localAddress,
			RequestTimeout: requestTimeout,
			ForeignURL:     foreignURL,
		},
		Workers: Workers{
			JobTimeout:     jobTimeout,
			StatusTTL:      statusTTL,
			MaxTrackedJobs: maxJobs,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
