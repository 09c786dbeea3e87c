package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL (e.g. https://records.example.com)
//	-t bearer token for the record-store backend
//	-d local database path
//	-container-id backend container identifier
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-refresh-interval background refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var token string
	var databaseDSN string
	var containerID string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Record-store backend base URL")
	flag.StringVar(&token, "t", "", "Backend bearer token")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&containerID, "container-id", "", "Backend container identifier")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ContainerID: containerID,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
