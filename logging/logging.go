package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultDir holds the log file relative to the working directory
	DefaultDir = "logs"
	// FileName is the active log file name
	FileName = "vi-clock.log"
	// DefaultMaxSize triggers rotation on startup (10 MiB)
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

// Options selects where and what to log
type Options struct {
	Enabled bool
	Dir     string
	Level   string
	MaxSize int64
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the application logger
// The terminal belongs to the screen, so output only ever goes to a file; disabled logging
// returns a no-op logger
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	if !opts.Enabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, maxSize, time.Now()); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, f, nil
}

// ParseLevel accepts zerolog level names, empty means info
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// rotate moves an oversized log aside with a timestamp suffix
func rotate(path string, maxSize int64, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
