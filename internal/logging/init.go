package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options identify the process in every log record.
type Options struct {
	App     string
	Version string
}

// New builds a logger from cfg merged over DefaultConfig. The returned close
// function flushes and closes the file sink, if any.
func New(cfg Config, opts Options) (*slog.Logger, func() error, error) {
	if opts.App == "" {
		opts.App = "waypoint"
	}
	normalized, err := DefaultConfig().Merge(cfg).Normalize()
	if err != nil {
		return nil, nil, err
	}

	writer, closeFn, err := resolveWriter(normalized, opts.App)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(normalized.Level)}
	var handler slog.Handler
	switch {
	case writer == nil:
		handler = slog.DiscardHandler
	case Format(deref(normalized.Format)) == FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	logger := slog.New(handler).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
	)
	return logger, closeFn, nil
}

// Init builds a logger with New and installs it as the slog default.
func Init(cfg Config, opts Options) (func() error, error) {
	logger, closeFn, err := New(cfg, opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

func parseLevel(value *string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(deref(value))) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolveWriter(cfg Config, app string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch Sink(deref(cfg.Sink)) {
	case SinkNone, "":
		return nil, noop, nil
	case SinkStderr:
		return os.Stderr, noop, nil
	case SinkFile:
		path := deref(cfg.File)
		if path == "" {
			dir, err := os.UserCacheDir()
			if err != nil {
				return nil, nil, fmt.Errorf("logging: resolve cache dir: %w", err)
			}
			path = filepath.Join(dir, app, app+".log")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    derefInt(cfg.MaxSizeMB, 10),
			MaxBackups: derefInt(cfg.MaxBackups, 3),
			MaxAge:     derefInt(cfg.MaxAgeDays, 14),
			Compress:   cfg.Compress != nil && *cfg.Compress,
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %q", deref(cfg.Sink))
	}
}

func derefInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
