package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/AutomateGardenPot_Go/internal/crops"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
)

// LoadCrops loads and validates the crops configuration and indexes it.
// It handles the complete lifecycle: load JSON → schema check → validate → log results.
func LoadCrops(ctx context.Context, path string) (*crops.Catalog, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLoadingCrops, "path", path)

	loader := crops.NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCrops, err)
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCrops, err)
	}

	catalog := crops.NewCatalog(cfg)
	log.Info(LogMsgCropsLoaded, "version", cfg.Version, "crops", len(cfg.Crops))
	return catalog, nil
}
