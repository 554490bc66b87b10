// Package logger wires charmbracelet/log to a rotating file under the data
// directory. Until Init runs, the package-level helpers are no-ops, which
// keeps tests quiet without setup.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var std *log.Logger

type Config struct {
	Debug   bool
	DataDir string
}

// Init configures the package logger. Logs rotate in <DataDir>/logs; in
// debug mode output is mirrored to stderr at debug level.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.DataDir, "logs")
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "nishwash.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}

	level := log.WarnLevel
	writer := io.Writer(fileWriter)
	if cfg.Debug {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	std = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "nishwash",
	})
	return nil
}

func Debug(msg string, keyvals ...any) {
	if std != nil {
		std.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if std != nil {
		std.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if std != nil {
		std.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if std != nil {
		std.Error(msg, keyvals...)
	}
}
