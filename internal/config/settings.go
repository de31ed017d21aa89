package config

import (
	"os"
	"strings"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/adjust"
	"github.com/mysticbob/foodwastecalc/internal/logging"
)

// Environment variables read by LoadSettings
const (
	EnvLogLevel       = "FOODCOST_LOG_LEVEL"
	EnvLogFormat      = "FOODCOST_LOG_FORMAT"
	EnvBLSAPIKey      = "FOODCOST_BLS_API_KEY"
	EnvRefreshTimeout = "FOODCOST_REFRESH_TIMEOUT"
)

// Settings are process-level options that do not belong in a household file
type Settings struct {
	LogLevel       string
	LogFormat      string
	BLSAPIKey      string
	RefreshTimeout time.Duration
}

// DefaultSettings returns settings with every option at its default
func DefaultSettings() Settings {
	return Settings{
		LogLevel:       "info",
		LogFormat:      logging.FormatConsole,
		RefreshTimeout: adjust.DefaultRefreshTimeout,
	}
}

// LoadSettings applies environment overrides to the defaults. Values that
// do not parse are ignored. A nil lookup reads the process environment.
func LoadSettings(lookup func(string) (string, bool)) Settings {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	s := DefaultSettings()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		switch strings.ToLower(v) {
		case logging.FormatJSON:
			s.LogFormat = logging.FormatJSON
		case logging.FormatConsole:
			s.LogFormat = logging.FormatConsole
		}
	}
	if v, ok := lookup(EnvBLSAPIKey); ok {
		s.BLSAPIKey = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvRefreshTimeout); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			s.RefreshTimeout = d
		}
	}
	return s
}
