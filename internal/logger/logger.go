// Package logger builds the zap loggers used by the CLI.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Options selects the logger flavour.
type Options struct {
	// Verbose enables debug-level output.
	Verbose bool

	// Quiet raises the level to warnings.
	Quiet bool

	// JSON forces the production JSON encoder even on a terminal.
	JSON bool
}

// New builds a logger writing to stderr. On a terminal it uses zap's
// development console encoder; otherwise the production JSON encoder.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if !opts.JSON && term.IsTerminal(int(os.Stderr.Fd())) {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	switch {
	case opts.Verbose:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case opts.Quiet:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return cfg.Build()
}
