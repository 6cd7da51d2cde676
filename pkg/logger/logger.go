// Package logger builds the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures a logger
type Options struct {
	Level  string
	Format string // json or text
	Output io.Writer
	// File, when set, receives a JSON copy of every record
	File string
}

// New creates a JSON logger on stdout at the given level
func New(level string) *slog.Logger {
	log, _, _ := NewWithOptions(Options{Level: level})
	return log
}

// NewWithOptions creates a logger from opts. The returned closer releases the
// log file and must be called on shutdown.
func NewWithOptions(opts Options) (*slog.Logger, io.Closer, error) {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var primary slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		primary = slog.NewTextHandler(out, handlerOpts)
	} else {
		primary = slog.NewJSONHandler(out, handlerOpts)
	}

	if opts.File == "" {
		return slog.New(primary), nopCloser{}, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log := slog.New(slogmulti.Fanout(
		primary,
		slog.NewJSONHandler(f, handlerOpts),
	))
	return log, f, nil
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
