// Package logging configures the shared zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger. Verbose runs log debug output to stderr;
// otherwise the logger is a nop so normal runs only print the final ✓/❌
// summary.
func New(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}
