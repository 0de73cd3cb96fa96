// Package logging builds the structured logger shared by the game and CLI.
// While the TUI owns the terminal, log lines go to a rotating file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/blockbreaker/internal/paths"
)

// Prefix tags every log line written by the game.
const Prefix = "blockbreaker"

// Options configures the logger.
type Options struct {
	// File is the log file path. Empty means stderr.
	File string

	// Level is one of debug, info, warn, error.
	Level string

	// Rotation settings for File.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultOptions returns options that log info and above to ~/.blockbreaker/blockbreaker.log.
func DefaultOptions() Options {
	return Options{
		File:       paths.Default("blockbreaker.log"),
		Level:      "info",
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger according to opts.
// The returned closer releases the log file and must be called on exit.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		path, err := paths.Expand(opts.File)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := paths.EnsureDir(path); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		w, closer = rotating, rotating
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
