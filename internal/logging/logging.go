// Package logging sets up the process-wide zap logger. Diagnostic logs go to
// a file under the XDG state dir; user-facing output stays in internal/ui.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how much is logged.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // empty disables the file sink
	Verbose bool   // also log to stderr at debug level
}

// ParseLevel maps a config level string to a zap level. Unknown values are info.
func ParseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// New builds a logger from opts. The returned cleanup flushes and closes sinks.
func New(opts Options) (*zap.Logger, func(), error) {
	var cores []zapcore.Core
	var closers []func()

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		closers = append(closers, func() { f.Close() })

		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), ParseLevel(opts.Level)))
	}

	if opts.Verbose {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), zapcore.DebugLevel))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() {}, nil
	}

	logger := zap.New(zapcore.NewTee(cores...))
	cleanup := func() {
		_ = logger.Sync()
		for _, c := range closers {
			c()
		}
	}
	return logger, cleanup, nil
}

// Install builds a logger from opts and makes it the global zap logger.
// It returns a function that restores the previous global and flushes sinks.
func Install(opts Options) (func(), error) {
	logger, cleanup, err := New(opts)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(logger)
	return func() {
		cleanup()
		restore()
	}, nil
}
