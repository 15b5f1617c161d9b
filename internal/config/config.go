package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Target settings
	BaseURL string
	Origin  string
	Timeout time.Duration

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Check settings
	ConsistencyRecords int

	// Optional MySQL DSN for run history
	HistoryDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	BaseURL      string
	Origin       string
	ConfigFile   string
	NameFilter   string
	Timeout      time.Duration
	OpenFailures bool
}

// fileConfig mirrors the optional apiprobe.yaml config file.
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	Origin         string `yaml:"origin"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	HistoryDSN     string `yaml:"history_dsn"`
	Output         struct {
		Dir  string `yaml:"dir"`
		File string `yaml:"file"`
	} `yaml:"output"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Origin:             DefaultOrigin,
		Timeout:            DefaultTimeout,
		OutputJSONFile:     DefaultOutputJSONFile,
		OutputJSONDir:      DefaultOutputJSONDir,
		ConsistencyRecords: DefaultConsistencyRecords,
	}
}

// Load applies, in order of increasing precedence: the YAML config file
// (if present), .env / environment variables, and command-line flags.
func (c *Config) Load(flags Flags) error {
	c.Flags = flags

	if err := c.loadFile(flags.ConfigFile); err != nil {
		return err
	}

	// .env might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	if v := os.Getenv("APIPROBE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("APIPROBE_ORIGIN"); v != "" {
		c.Origin = v
	}
	if v := os.Getenv("APIPROBE_HISTORY_DSN"); v != "" {
		c.HistoryDSN = v
	}

	if flags.BaseURL != "" {
		c.BaseURL = flags.BaseURL
	}
	if flags.Origin != "" {
		c.Origin = flags.Origin
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}

	return nil
}

// loadFile merges the YAML config file into the config. A missing default
// file is not an error; a missing explicit file is.
func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Origin != "" {
		c.Origin = fc.Origin
	}
	if fc.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.HistoryDSN != "" {
		c.HistoryDSN = fc.HistoryDSN
	}
	if fc.Output.Dir != "" {
		c.OutputJSONDir = fc.Output.Dir
	}
	if fc.Output.File != "" {
		c.OutputJSONFile = fc.Output.File
	}

	return nil
}

// Validate checks that the config describes a usable target.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required (flag --url, APIPROBE_BASE_URL, or config file)")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must be an absolute http(s) URL", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q has no host", c.BaseURL)
	}
	return nil
}

// GetOutputPath returns the full path to the report JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
