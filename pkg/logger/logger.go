package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Log = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Init installs the process-wide JSON logger. level is one of
// debug, info, warn, error; anything else means debug.
func Init(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	Log = slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
