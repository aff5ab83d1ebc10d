package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/ficedit/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	Disabled   = zerolog.Disabled
)

// Config defines the configuration for logger creation
type Config struct {
	Writer io.Writer
	// Path overrides the XDG log location when Writer is nil.
	Path       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Level      zerolog.Level
}

// New creates a new context with a logger attached
// For production: provide fs, leave Writer nil for rotated file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	writer := config.Writer

	if writer == nil {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := resolveLogPath(fs, config.Path)
		if err != nil {
			return nil, err
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    orDefault(config.MaxSize, maxLogSizeMB),
			MaxBackups: orDefault(config.MaxBackups, maxLogBackups),
			MaxAge:     orDefault(config.MaxAge, maxLogAgeDays),
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// ParseLevel converts a config level name, defaulting to info when empty.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func resolveLogPath(fs afero.Fs, path string) (string, error) {
	if path == "" {
		logFile, err := storage.New(fs).GetLogPath()
		if err != nil {
			return "", fmt.Errorf("failed to get log path: %w", err)
		}
		return logFile, nil
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return path, nil
}

func orDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
