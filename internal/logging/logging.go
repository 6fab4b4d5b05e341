// Package logging builds the structured logger used across the daemon.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options select level, format and destination for the daemon log.
type Options struct {
	Level  string // "debug", "info", "warn", "error" (default "info")
	Format string // "text" or "json" (default "text")
	File   string // log file path; empty means stderr
}

// New opens the configured destination and returns a logger writing to it.
// The returned closer is a no-op when logging to stderr.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = f
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		closer.Close()
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return slog.New(handler), closer, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
