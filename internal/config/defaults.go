package config

import "time"

const (
	// DefaultOutputJSONFile is the default report file name
	DefaultOutputJSONFile = "probe-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultConfigFile is the config file looked up when none is given
	DefaultConfigFile = "apiprobe.yaml"
	// DefaultOrigin is the Origin header value used for CORS checks
	DefaultOrigin = "https://example.com"
	// DefaultTimeout is the per-request timeout of the HTTP client
	DefaultTimeout = 30 * time.Second
	// DefaultConsistencyRecords is how many records the consistency check creates
	DefaultConsistencyRecords = 3
)
