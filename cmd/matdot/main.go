// Command matdot multiplies or transposes matrices stored in a JSON file.
//
// Usage:
//
//	matdot [-op dot|transpose] <file.json | file.json.gz>
//
// The file holds {"a": [[...]], "b": [[...]]}. dot prints a·b, transpose
// prints aᵀ. Logging is configured with MATDOT_LOG_LEVEL and MATDOT_LOG_JSON.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/genmat/internal/config"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		cfg = config.Config{LogLevel: config.LogLevelInfo}
	}
	logger, lerr := cfg.NewLogger()
	if lerr != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()
	if err != nil {
		logger.Warn("falling back to default config", zap.Error(err))
	}

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("matdot failed", zap.Error(err))
		os.Exit(1)
	}
}
