// Package logging configures the process-wide slog logger to write into a
// rotating log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// File is the path of the active log file.
	File       string
	Level      slog.Level
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Stderr also copies every record to stderr.
	Stderr bool
}

var (
	mu        sync.Mutex
	logOutput *lumberjack.Logger
)

// Init installs the default slog logger. It should be called once at
// application startup; later calls replace the previous output.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	if logOutput != nil {
		logOutput.Close()
	}
	logOutput = &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	var w io.Writer = logOutput
	if opts.Stderr {
		w = io.MultiWriter(logOutput, os.Stderr)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("StarScope logging starting", "file", opts.File, "level", opts.Level)
	return nil
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logOutput == nil {
		return nil
	}
	err := logOutput.Close()
	logOutput = nil
	return err
}
