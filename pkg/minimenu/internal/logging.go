package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
)

// logSink is one lazily built JSON logger with an adjustable level.
type logSink struct {
	once   sync.Once
	logger *slog.Logger
	level  slog.LevelVar
}

var (
	logPath string
	logFile *os.File

	outputOnce sync.Once
	output     io.Writer = os.Stdout

	appSink      logSink
	internalSink logSink
)

// SetLogPath sets the full path of the log file. Parent directories are
// created on first use. Must be called before the first logger is built.
func SetLogPath(path string) {
	logPath = path
}

func openOutput() io.Writer {
	outputOnce.Do(func() {
		if logPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, stay on stdout
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stdout, f)
	})
	return output
}

func (s *logSink) get(initial slog.Level) *slog.Logger {
	s.once.Do(func() {
		s.level.Set(initial)
		s.logger = slog.New(slog.NewJSONHandler(openOutput(), &slog.HandlerOptions{
			Level: &s.level,
		}))
	})
	return s.logger
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return appSink.get(slog.LevelInfo)
}

// GetInternalLogger returns the logger used by the engine itself. It is
// quiet (Error) unless MINIMENU_DEBUG is set.
func GetInternalLogger() *slog.Logger {
	level := slog.LevelError
	if os.Getenv(constants.DebugEnvVar) != "" {
		level = slog.LevelDebug
	}
	return internalSink.get(level)
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	appSink.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalSink.level.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is Info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
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

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLevel(raw))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
