// Package log provides the structured logging setup for the library.
//
// It installs a JSON slog handler wrapped so that errors produced by
// pkg/errors carry their stack trace as a dedicated attribute. The
// prediction hot path never logs; only one-time operations such as model
// loading emit records.
package log

import (
	"log/slog"
	"os"
)

// SetupLogger installs the default slog logger with JSON output on stdout
// at the given level ("debug", "info", "warn" or "error"; anything else
// falls back to info).
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
