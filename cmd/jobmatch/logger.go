package main

import (
	"go.uber.org/zap"
)

// newLogger builds the process logger. Verbose enables debug level with
// console output; jsonLogs switches to production JSON encoding.
func newLogger(verbose, jsonLogs bool) (*zap.Logger, error) {
	if jsonLogs {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		return cfg.Build()
	}
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
