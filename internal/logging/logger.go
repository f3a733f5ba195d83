// Package logging builds the CLI's slog loggers. Library packages never
// log; everything here serves cmd/qdsim only.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates the application logger for the given level name
// ("debug", "info", "warn", "error"; anything else falls back to info).
// It writes to Stderr so command output on Stdout stays clean, and
// standardizes the "error" key to "err".
func New(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
