// Package logging configures the zerolog logger shared by the Pokédex
// packages and the CLI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"

	// LevelDisabled silences all output.
	LevelDisabled LogLevel = "disabled"
)

// Component names used with NewLogger.
const (
	ComponentClient     = "pokeapi-client"
	ComponentCache      = "response-cache"
	ComponentAggregator = "aggregator"
	ComponentBatch      = "batch-fetcher"
	ComponentSearch     = "search-index"
	ComponentProfile    = "profile"
	ComponentCompare    = "comparator"
	ComponentCLI        = "cli"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
// The CLI writes results to stdout, so logs stay on stderr and only warnings
// surface unless asked for.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Pretty: true,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(string(cfg.Level)))

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// ParseLevel converts a level name to zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a new logger with the given component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: request flow and internal state
//   - PokeAPI request start/finish, cache hit/miss
//   - Aggregation strategy chosen, candidate counts, batch boundaries
//
// Info: normal operation events
//   - Aggregation published, search index built
//
// Warn: conditions that don't prevent operation
//   - Superseded aggregation results discarded
//   - Cache errors (fallback to direct request)
//   - Non-2xx PokeAPI responses
//
// Error: failures surfaced to the user
//   - Transport failures, aborted aggregations, configuration errors
//
// Context Fields:
//   - endpoint: PokeAPI resource (pokemon, type, generation, ...)
//   - status: HTTP status code
//   - duration: request or aggregation duration
//   - strategy: aggregation strategy (all, types, types+generations, generations)
//   - seq: aggregation sequence number
//   - batch: batch index during detail fetch
