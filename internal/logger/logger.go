// Package logger provides structured logging using Zap.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Options tunes the global logger.
type Options struct {
	// Env selects the encoder: "production" logs JSON, anything else logs
	// human-readable console lines.
	Env string
	// File, when set, receives a copy of every entry and is rotated by size.
	File string
}

// Init initializes the global logger for the given environment.
func Init(env string) {
	InitWithOptions(Options{Env: env})
}

// InitWithOptions initializes the global logger. Only the first call has an effect.
func InitWithOptions(opts Options) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if opts.Env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			// Fallback to nop logger if initialization fails.
			base = zap.NewNop()
		}

		if opts.File != "" {
			base = base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
				return zapcore.NewTee(core, fileCore(opts.File))
			}))
		}

		sugar = base.Sugar()
	})
}

// fileCore writes JSON entries to a size-rotated file.
func fileCore(path string) zapcore.Core {
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	})
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zap.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zap.DebugLevel
	}
	return zapcore.NewCore(encoder, writer, level)
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Replace swaps the global logger for l and returns a function that restores
// the previous one.
func Replace(l *zap.Logger) func() {
	prev := Get()
	sugar = l.Sugar()
	return func() { sugar = prev }
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
