// Package logging builds the process-wide structured logger used by
// every pipeline stage. It is a thin wrapper around zap.Logger
// construction, kept separate from config so stages that only need a
// logger (e.g. tests) don't have to construct a full Config.
package logging

import "go.uber.org/zap"

// New builds a production zap.Logger at the given level ("debug",
// "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}

// NewDevelopment builds a human-readable console logger for local
// runs.
func NewDevelopment() (*zap.Logger, error) {
	return zap.NewDevelopmentConfig().Build()
}

// NewNop returns a logger that discards everything, for tests that
// don't assert on log output.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
