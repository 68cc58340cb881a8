package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	FilePath   string // rotating JSON log file; empty disables the file sink
	MaxSizeMB  int    // rotate the file after this size
	MaxBackups int    // rotated files to keep
	Console    bool   // also log human-readable output to stdout/stderr
}

// New creates a logger with up to three destinations: a human-readable
// console stream on stdout, errors mirrored to stderr, and a rotating
// JSON file. The returned logger is constructed once at process start
// and must be flushed with Sync before exit.
func New(config Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cores []zapcore.Core

	if config.Console {
		consoleConfig := zap.NewDevelopmentEncoderConfig()
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleConfig.TimeKey = "timestamp"
		consoleConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder := zapcore.NewConsoleEncoder(consoleConfig)

		// info and below to stdout, errors to stderr
		belowError := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= level && l < zapcore.ErrorLevel
		})
		errorAndAbove := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel
		})

		cores = append(cores,
			zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), belowError),
			zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), errorAndAbove),
		)
	}

	if config.FilePath != "" {
		fileConfig := zap.NewProductionEncoderConfig()
		fileConfig.TimeKey = "ts"
		fileConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		fileConfig.MessageKey = "msg"
		fileConfig.LevelKey = "level"
		fileEncoder := zapcore.NewJSONEncoder(fileConfig)

		rotating := &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
		}

		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotating), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

// NewDefault creates a console-only logger for development and tests
func NewDefault() *zap.Logger {
	logger, _ := New(Config{
		Level:   "info",
		Console: true,
	})
	return logger
}
