// Package log provides the slog-based application logger. The logger writes
// to stderr by default; setting a file path enables rotated file output.
//
// Environment variables:
//
//	PROMPTHUB_LOG_LEVEL=debug|info|warn|error
//	PROMPTHUB_LOG_FORMAT=console|json
//	PROMPTHUB_LOG_FILE=<path>
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level  string // debug, info, warn, error (default info)
	Format string // console or json (default console)
	File   string // optional path; enables rotated file logging
}

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

// FromEnv builds Options from PROMPTHUB_LOG_* environment variables.
func FromEnv() Options {
	return Options{
		Level:  os.Getenv("PROMPTHUB_LOG_LEVEL"),
		Format: os.Getenv("PROMPTHUB_LOG_FORMAT"),
		File:   os.Getenv("PROMPTHUB_LOG_FILE"),
	}
}

// Init configures the package logger and sets it as slog's default.
func Init(opts Options) {
	var w io.Writer = os.Stderr
	if opts.File != "" {
		w = &lj.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	l := slog.New(h)
	mu.Lock()
	logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// L returns the application logger, initializing from the environment on
// first use.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
