// Package logging writes the zerolog debug log; the terminal owns stdout so nothing goes to the console
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// FileName is the active log file inside the logs directory
	FileName = "vi-racer.log"

	// MaxLogSizeMB is the size at which the active log is rotated
	MaxLogSizeMB = 10

	// MaxLogSize is MaxLogSizeMB in bytes
	MaxLogSize = MaxLogSizeMB * 1024 * 1024

	// MaxLogBackups is the number of rotated logs kept
	MaxLogBackups = 5
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel converts a config level name, unknown names map to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup opens the size-rotated file logger under dir when debug is on
// With debug off the logger discards everything and the closer is a no-op
func Setup(dir string, debug bool, level string) (zerolog.Logger, io.Closer, error) {
	if !debug {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("creating logs directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    MaxLogSizeMB,
		MaxBackups: MaxLogBackups,
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).Level(ParseLevel(level)).With().Timestamp().Logger()

	logger.Info().Str("level", level).Msg("Logging initialized")
	return logger, file, nil
}
