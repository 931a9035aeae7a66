package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log discards until Init is called so packages can log from tests without setup.
var Log = slog.New(slog.NewJSONHandler(io.Discard, nil))

func Init() {
	InitWithLevel(os.Getenv("LOG_LEVEL"))
}

// InitWithLevel installs the JSON handler for production-ready logging at the named level.
func InitWithLevel(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	Log = slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
