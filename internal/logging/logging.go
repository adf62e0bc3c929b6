// Package logging builds the per-run analysis logger. The logger is created
// for a single run and handed to the orchestrator explicitly; there is no
// package-level logger, so concurrent or repeated runs in one process never
// share state.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFileName is the run log filename under the output directory.
const LogFileName = "analysis_log.txt"

// New creates a logger writing to logPath. With verbose set, debug output is
// also teed to stderr. Callers must ensure the parent directory exists and
// should defer the returned sync function.
func New(logPath string, verbose bool) (*zap.SugaredLogger, func(), error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if verbose {
		cfg.OutputPaths = append(cfg.OutputPaths, "stderr")
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	sugar := logger.Sugar()
	return sugar, func() { _ = sugar.Sync() }, nil
}

// Nop returns a logger that discards everything, for tests and for callers
// that have no output directory yet.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
