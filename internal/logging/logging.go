// Package logging builds the file-backed logger. The terminal belongs to the
// UI, so log output never goes to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const prefix = "todolist"

// Logger is a leveled logger writing to a file it owns.
type Logger struct {
	*log.Logger
	file *os.File
}

// Open appends to the log file at path, creating it and its directory.
func Open(path, level string) (*Logger, error) {
	if path == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(file, level)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &Logger{Logger: logger, file: file}, nil
}

// New returns a logger writing to w at the named level ("" means info).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
