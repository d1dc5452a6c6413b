// Package logging configures structured logging with tint.
//
// The terminal belongs to the UI while tipcalc runs, so logs go to a file.
//
// Environment variables:
//
//	TIPCALC_LOG_LEVEL: debug, info, warn, error (default: info)
//	TIPCALC_LOG_FILE:  log file path (default: $TMPDIR/tipcalc.log)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	// LevelEnv selects the minimum log level.
	LevelEnv = "TIPCALC_LOG_LEVEL"
	// FileEnv overrides the default log file path.
	FileEnv = "TIPCALC_LOG_FILE"
)

// DefaultPath returns the log file used when neither a flag nor FileEnv is set.
func DefaultPath() string {
	if p := os.Getenv(FileEnv); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "tipcalc.log")
}

// NewLogger returns a tint-backed logger writing to w at level.
// Color is disabled; the output is meant for files.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}))
}

// SetupFile opens (or creates) the log file at path in append mode and
// installs a logger writing to it as the slog default. The caller closes the
// returned file.
func SetupFile(path string, level slog.Level) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	slog.SetDefault(NewLogger(f, level))
	return f, nil
}

// LevelFromEnv reads LevelEnv, defaulting to info.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(LevelEnv))
}

// ParseLevel maps a level name to slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
