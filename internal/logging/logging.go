// Package logging sets up the file-backed logger. The TUI owns the terminal,
// so log output always goes to a file, never to stdout or stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Setup opens the log file under dir and returns the logger plus a cleanup
// function. On failure the returned logger discards everything so callers
// can keep running without log output.
func Setup(dir string, debug bool) (*slog.Logger, func() error, error) {
	discard := slog.New(slog.NewJSONHandler(io.Discard, nil))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() error { return nil }, err
	}

	path := filepath.Join(dir, "shopdeck.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() error { return nil }, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	logger := slog.New(h)
	logger.Info("logger initialized", "path", path, "debug", debug)

	return logger, f.Close, nil
}
