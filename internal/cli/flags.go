package cli

import (
	"time"

	"apiprobe/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	BaseURL        string
	Origin         string
	ConfigFile     string
	NameFilter     string
	TimeoutSeconds int
	OpenFailures   bool
	HistoryLimit   int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BaseURL:      f.BaseURL,
		Origin:       f.Origin,
		ConfigFile:   f.ConfigFile,
		NameFilter:   f.NameFilter,
		Timeout:      time.Duration(f.TimeoutSeconds) * time.Second,
		OpenFailures: f.OpenFailures,
	}
}
