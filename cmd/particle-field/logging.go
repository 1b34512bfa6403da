package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// setupLogging returns a file logger under debug, otherwise a no-op logger
// The terminal is in raw full-screen mode, so logs never go to stdout/stderr
func setupLogging(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
