// Package logging configures the zerolog logger shared by wayfare components.
//
// Commands print their results with fmt and lipgloss; diagnostics that the
// user did not ask for (swallowed database errors, catalog load failures)
// go through this logger on stderr.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// Level is one of trace, debug, info, warn, error, disabled. Default: warn.
	Level string
	// Format is console or json. Default: console.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	initLogger(DefaultConfig())
}

// Init reconfigures the global logger. Safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	log = zerolog.New(output).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to zerolog; unknown names mean warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Component returns a child of the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", name).Logger()
}
