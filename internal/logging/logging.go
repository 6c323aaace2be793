// Package logging wires up the service's single shared logger.
package logging

import "go.uber.org/zap"

// New returns a production zap logger rendered as a sugared logger, the
// form every other internal package takes a dependency on.
func New() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
