package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/treb-diamond/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := parseLevel(os.Getenv("TREB_LOG_LEVEL"), slog.LevelWarn)
	if cfg != nil && cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop time for cleaner CLI output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(val string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
