package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelFromString maps LOG_LEVEL values to slog levels, defaulting to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func New(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Discard is for tests and for callers that don't care about editor chatter.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}
