package gardenpot

import (
	"fmt"

	"github.com/osse101/AutomateGardenPot_Go/internal/automate"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
)

// IndoorPotMachine lets the automation loop water and harvest a garden pot.
// It holds a non-owning reference to the pot; the host simulation owns the
// pot's lifetime and its crop growth.
type IndoorPotMachine struct {
	pot      *domain.IndoorPot
	location *domain.Location
	tile     domain.Vector2
	skills   SkillSource
	rng      utils.Rand
}

var _ automate.Machine = (*IndoorPotMachine)(nil)

// NewIndoorPotMachine wraps the pot placed at tile in location
func NewIndoorPotMachine(pot *domain.IndoorPot, location *domain.Location, tile domain.Vector2, skills SkillSource, rng utils.Rand) *IndoorPotMachine {
	return &IndoorPotMachine{
		pot:      pot,
		location: location,
		tile:     tile,
		skills:   skills,
		rng:      rng,
	}
}

// MachineTypeID implements automate.Machine
func (m *IndoorPotMachine) MachineTypeID() string {
	return MachineTypeID
}

// Location implements automate.Machine
func (m *IndoorPotMachine) Location() *domain.Location {
	return m.location
}

// TileArea implements automate.Machine
func (m *IndoorPotMachine) TileArea() domain.Rectangle {
	return domain.TileRect(m.tile)
}

// GetState implements automate.Machine
func (m *IndoorPotMachine) GetState() automate.MachineState {
	dirt := m.pot.HoeDirt
	if dirt == nil || dirt.Crop == nil {
		return automate.Disabled
	}
	if dirt.Crop.CanHarvest() {
		return automate.Done
	}
	if !dirt.Watered() {
		return automate.Empty
	}
	return automate.Processing
}

// GetOutput implements automate.Machine. The crop is only reset for
// regrowth once the returned output is committed.
//
// It panics when the pot has no crop; callers must check GetState first.
func (m *IndoorPotMachine) GetOutput() automate.Output {
	crop := m.pot.Crop()
	if crop == nil {
		panic(fmt.Errorf("%w: indoor pot at %s", domain.ErrNoCrop, m.tile))
	}

	level := 0
	if m.skills != nil {
		level = m.skills.FarmingLevel()
	}
	item := harvestItem(crop, harvestQuantity(crop, level, m.rng))

	return automate.NewTrackedItem(item, func(domain.Item) {
		if crop := m.pot.Crop(); crop != nil {
			applyHarvest(crop, m.tile)
		}
	})
}

// SetInput implements automate.Machine. It waters the pot with the first
// watering tool in storage that still holds water.
func (m *IndoorPotMachine) SetInput(input automate.Storage) bool {
	dirt := m.pot.HoeDirt
	if dirt == nil || dirt.Crop == nil || dirt.Watered() {
		return false
	}

	for _, stack := range input.GetItems() {
		if _, ok := stack.Sample().(domain.Waterer); !ok {
			continue
		}
		can, ok := stack.Unwrap().(domain.Waterer)
		if !ok || can.WaterLeft() < wateringCost {
			continue
		}
		can.UseWater(wateringCost)
		dirt.State = domain.DirtWatered
		return true
	}
	return false
}
