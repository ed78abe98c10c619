package worker

import (
	"context"
	"fmt"

	"github.com/osse101/AutomateGardenPot_Go/internal/crops"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
)

// Replanter plays the host's part after a harvest: crops that do not regrow
// are removed from their pot and, when a catalog is set, planted again.
type Replanter struct {
	location *domain.Location
	catalog  *crops.Catalog
	rng      utils.Rand
}

// NewReplanter creates a replanter for one location; catalog may be nil to only clear
func NewReplanter(location *domain.Location, catalog *crops.Catalog, rng utils.Rand) *Replanter {
	return &Replanter{location: location, catalog: catalog, rng: rng}
}

// Register subscribes to harvest events
func (r *Replanter) Register(bus event.Bus) {
	bus.Subscribe(event.MachineHarvested, r.HandleEvent)
}

// HandleEvent clears and replants the harvested pot
func (r *Replanter) HandleEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.MachineHarvestedPayload](evt.Payload)
	if err != nil || payload.Location != r.location.Name {
		return nil
	}

	obj, ok := r.location.ObjectAt(payload.Tile)
	if !ok {
		return nil
	}
	pot, ok := obj.(*domain.IndoorPot)
	if !ok {
		return nil
	}
	crop := pot.Crop()
	if crop == nil || crop.Regrows() {
		return nil
	}

	log := logger.FromContext(ctx)
	pot.HoeDirt.Crop = nil
	log.Debug(LogMsgCropCleared, "crop", crop.Name, "tile", payload.Tile.String())

	if r.catalog == nil {
		return nil
	}
	if _, err := r.catalog.Plant(crop.Name, pot.HoeDirt, r.rng); err != nil {
		return fmt.Errorf("replant %s at %s: %w", crop.Name, payload.Tile, err)
	}
	log.Debug(LogMsgCropReplanted, "crop", crop.Name, "tile", payload.Tile.String())
	return nil
}
