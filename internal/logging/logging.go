// Package logging sets up the file logger shared by the application.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/crate/internal/config"
)

const logFileName = "crate.log"

// Logger wraps a charmbracelet logger and the file it writes to.
type Logger struct {
	*log.Logger
	file *os.File
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// Open creates the logger described by cfg. A disabled config yields a
// discarding logger.
func Open(cfg config.LogConfig) (*Logger, error) {
	if !cfg.Enabled {
		return Discard(), nil
	}

	path := cfg.File
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join("crate", logFileName))
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{Logger: New(f, cfg), file: f}, nil
}

// New builds a logger writing to w with cfg's level and format.
func New(w io.Writer, cfg config.LogConfig) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           ParseLevel(cfg.Level),
		Prefix:          "crate",
	})
	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(log.JSONFormatter)
	case "logfmt":
		l.SetFormatter(log.LogfmtFormatter)
	default:
		l.SetFormatter(log.TextFormatter)
	}
	return l
}

// ParseLevel converts a config level name, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Path returns the file being written, or "" for a discarding logger.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
