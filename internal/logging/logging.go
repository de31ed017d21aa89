// Package logging wires zerolog for the foodcost CLI and libraries.
// Library code pulls its logger from the context; when none is attached
// it gets a disabled logger, so packages stay quiet under test.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Log output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the level, format and destination of the logger
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a logger from cfg. An unparseable level falls back to info;
// an unknown format falls back to console.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ComponentLogger returns a child logger tagged with a component name
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a disabled logger
func FromContext(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		nop := zerolog.Nop()
		return &nop
	}
	return l
}

type runIDKey struct{}

// NewRunID returns a new sortable identifier for one CLI invocation
func NewRunID() string {
	return ulid.Make().String()
}

// WithRunID attaches a run id to ctx and to the logger carried in it
func WithRunID(ctx context.Context, l zerolog.Logger, runID string) context.Context {
	ctx = context.WithValue(ctx, runIDKey{}, runID)
	return l.With().Str("run_id", runID).Logger().WithContext(ctx)
}

// RunIDFromContext returns the run id attached by WithRunID
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Printf adapts a zerolog logger to printf-style Debugf/Infof/Warnf/Errorf
// callers such as the calculation engine
type Printf struct {
	Logger zerolog.Logger
}

func (p Printf) Debugf(format string, args ...any) { p.Logger.Debug().Msgf(format, args...) }
func (p Printf) Infof(format string, args ...any)  { p.Logger.Info().Msgf(format, args...) }
func (p Printf) Warnf(format string, args ...any)  { p.Logger.Warn().Msgf(format, args...) }
func (p Printf) Errorf(format string, args ...any) { p.Logger.Error().Msgf(format, args...) }
