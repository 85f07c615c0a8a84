// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gnames/namestat/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "namestat.log"

var (
	mu sync.Mutex
	// logFile is the file used by the current default logger.
	logFile *os.File
)

// Init initializes the global slog logger with the given configuration.
// If destination is "file", the first call creates a fresh log file in
// logDir, later calls for the same logDir keep appending to it. A log
// file that is not used anymore is closed.
func Init(logDir string, cfg config.LogConfig) error {
	mu.Lock()
	defer mu.Unlock()

	var writer io.Writer
	var file *os.File

	// Determine output destination
	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		if logFile != nil && logFile.Name() == logPath {
			file = logFile
		} else {
			var err error
			if file, err = os.Create(logPath); err != nil {
				return CreateLogFileError(logPath, err)
			}
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(slog.New(NewHandler(writer, cfg)))

	if logFile != nil && logFile != file {
		_ = logFile.Close()
	}
	logFile = file

	return nil
}

// Close closes the log file, if there is one. Logs go to STDERR after
// that.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	err := logFile.Close()
	logFile = nil
	return err
}

// NewHandler creates a slog handler writing to w with the format and
// level from cfg.
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	switch cfg.Format {
	case "json":
		return slog.NewJSONHandler(w, handlerOpts)
	case "text", "tint":
		// tint is rendered as plain text for now
		return slog.NewTextHandler(w, handlerOpts)
	default:
		// Default to JSON format for any unrecognized format
		return slog.NewJSONHandler(w, handlerOpts)
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
