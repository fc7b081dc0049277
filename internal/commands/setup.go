package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/casalfin/statement-engine/internal/engine"
	"github.com/casalfin/statement-engine/internal/patterns"
	"github.com/casalfin/statement-engine/internal/store"
)

// SetupLogger builds a logger from the common config
func SetupLogger(config CommonConfig) (*log.Logger, error) {
	logger := log.New(os.Stderr)
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// SetupStore opens the transaction store under the configured data
// directory, using the configured timezone for dates
func SetupStore(config CommonConfig, logger *log.Logger) (*store.Store, error) {
	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}
	return store.New(config.DataDir, logger, loc)
}

// SetupEngine builds the pattern engine from the built-in registry
func SetupEngine(config EngineConfig, logger *log.Logger) *engine.Engine {
	return engine.New(patterns.Default(), logger, engine.Config{
		Dedupe:        config.Dedupe,
		MaxInputBytes: config.MaxInputBytes,
	})
}
