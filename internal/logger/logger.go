// Package logger wraps a process-wide charmbracelet logger that writes to a
// rotating file under the config directory. The package-level helpers are
// safe to call before Init; they drop the message.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/recoverwise/internal/constants"
)

const (
	logDirName  = "logs"
	logFileName = constants.AppName + ".log"

	// Rotation settings for the log file.
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var (
	// Logger is the global logger instance
	Logger *log.Logger

	// file is the rotating writer behind Logger, kept so Close can release it.
	file *lumberjack.Logger
)

// Config holds logger configuration
type Config struct {
	// Debug lowers the level to debug, adds caller info and mirrors output
	// to stderr.
	Debug bool
	// ConfigDir is the directory that holds the logs/ subdirectory.
	ConfigDir string
}

// Path returns the log file used for the given config directory.
func Path(configDir string) string {
	return filepath.Join(configDir, logDirName, logFileName)
}

// Init initializes the global logger with the given configuration.
// Calling it again replaces the previous logger and closes its file.
func Init(cfg Config) error {
	logFile := Path(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return err
	}

	if err := Close(); err != nil {
		return err
	}

	file = &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	// Silent on stderr unless debugging
	var writer io.Writer = file
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, file)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return nil
}

// Close flushes and closes the log file. The global logger is cleared, so
// later calls to the helpers are no-ops until Init runs again.
func Close() error {
	Logger = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
