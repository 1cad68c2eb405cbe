package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to a console writer on stderr)
}

var (
	mu   sync.Mutex
	base = zerolog.New(newConsoleWriter(os.Stderr)).With().Timestamp().Logger()
)

func newConsoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
}

// ParseLevel resolves level, then LOG_LEVEL, falling back to info.
func ParseLevel(level string) zerolog.Level {
	for _, candidate := range []string{level, os.Getenv("LOG_LEVEL")} {
		if candidate == "" {
			continue
		}
		if parsed, err := zerolog.ParseLevel(candidate); err == nil {
			return parsed
		}
	}
	return zerolog.InfoLevel
}

// Configure replaces the base logger. Commands call it once the
// configuration and flags are known.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	writer := cfg.Output
	if writer == nil {
		writer = newConsoleWriter(os.Stderr)
	}
	base = zerolog.New(writer).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
