// Package logging holds the process-wide zap logger used by anno.
package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Logger returns the configured logger. It is a no-op logger until SetLogger
// is called.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the package logger. A nil logger restores the no-op one.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Options controls the logger built by New.
type Options struct {
	// Verbose enables debug output.
	Verbose bool
	// Quiet restricts output to errors. It wins over Verbose.
	Quiet bool
	// Output receives log lines. Defaults to stderr.
	Output io.Writer
	// File, when set, sends log lines to a size-rotated file instead of
	// Output.
	File string
}

// New builds a console logger. Diagnostics go to stderr so they never mix
// with the dump on stdout.
func New(opts Options) *zap.Logger {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	switch {
	case opts.Quiet:
		level.SetLevel(zap.ErrorLevel)
	case opts.Verbose:
		level.SetLevel(zap.DebugLevel)
	}

	out := opts.Output
	switch {
	case opts.File != "":
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 1,
			MaxAge:     7, // days
		}
	case out == nil:
		out = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), level)
	return zap.New(core)
}
