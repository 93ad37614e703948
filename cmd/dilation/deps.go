package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ersonp/dilation-core/internal/application/handlers"
	"github.com/ersonp/dilation-core/internal/domain/services"
	"github.com/ersonp/dilation-core/internal/infrastructure/config"
	"github.com/ersonp/dilation-core/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services are internal.
type Deps struct {
	Config           *config.Config
	Log              zerolog.Logger
	CalculateHandler *handlers.CalculateHandler
	BatchHandler     *handlers.BatchHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	converter := services.NewUnitConverter()
	engine := services.NewDilationEngine(converter)
	formatter := services.NewNumberFormatter()

	calculateHandler := handlers.NewCalculateHandler(engine, formatter)

	deps := &Deps{
		Config:           cfg,
		Log:              logging.New(cfg.Log),
		CalculateHandler: calculateHandler,
		BatchHandler:     handlers.NewBatchHandler(calculateHandler),
	}

	return fn(deps)
}
