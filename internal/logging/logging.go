// Package logging builds the process logger and installs it behind go-kasumi's logger,
// which go-sarah and the Discord adapter write to.
package logging

import (
	"fmt"

	"github.com/oklahomer/go-kasumi/logger"
	"go.uber.org/zap"
)

// New builds a JSON zap logger that drops entries below level.
func New(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = atomicLevel
	config.DisableStacktrace = true

	z, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return z, nil
}

// Install routes go-kasumi's package-level logger to z.
func Install(z *zap.Logger) {
	logger.SetLogger(z.Sugar())
}

// Setup is New followed by Install.
func Setup(level string) (*zap.Logger, error) {
	z, err := New(level)
	if err != nil {
		return nil, err
	}
	Install(z)
	return z, nil
}
