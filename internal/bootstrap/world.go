package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/AutomateGardenPot_Go/internal/crops"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
)

// WorldConfig describes the demo greenhouse
type WorldConfig struct {
	PotCount     int
	PlantedCrops []string
	FarmingLevel int
}

// World is the simulated host state
type World struct {
	Location *domain.Location
	Chest    *domain.Chest
	Farmer   *domain.Farmer
	Pots     []*domain.IndoorPot
}

// BuildGreenhouse places a row of pots, plants them round-robin from PlantedCrops
// and puts a chest holding a watering can below the pots.
func BuildGreenhouse(ctx context.Context, cfg WorldConfig, catalog *crops.Catalog, rng utils.Rand) (*World, error) {
	w := &World{
		Location: domain.NewLocation(GreenhouseName),
		Chest:    domain.NewChest(),
		Farmer:   &domain.Farmer{Name: "Farmer", Level: cfg.FarmingLevel},
	}

	for i := 0; i < cfg.PotCount; i++ {
		pot := domain.NewIndoorPot()
		tile := domain.Vector2{X: i % PotsPerRow, Y: i / PotsPerRow}
		if err := w.Location.Place(tile, pot); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgPlaceObject, err)
		}
		w.Pots = append(w.Pots, pot)

		if len(cfg.PlantedCrops) == 0 || i >= len(cfg.PlantedCrops) {
			continue
		}
		if _, err := catalog.Plant(cfg.PlantedCrops[i], pot.HoeDirt, rng); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgPlantCrop, err)
		}
	}

	if err := w.Chest.Add(domain.NewWateringCan()); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgStockChest, err)
	}
	chestTile := domain.Vector2{X: 0, Y: (cfg.PotCount+PotsPerRow-1)/PotsPerRow + 1}
	if err := w.Location.Place(chestTile, w.Chest); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgPlaceObject, err)
	}

	logger.FromContext(ctx).Info(LogMsgWorldBuilt,
		"location", w.Location.Name,
		"pots", len(w.Pots),
		"chest_tile", chestTile.String())
	return w, nil
}
