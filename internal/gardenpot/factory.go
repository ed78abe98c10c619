package gardenpot

import (
	"github.com/osse101/AutomateGardenPot_Go/internal/automate"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
)

// Factory builds IndoorPotMachines for garden pots and ignores everything else
type Factory struct {
	skills SkillSource
	rng    utils.Rand
}

var _ automate.Factory = (*Factory)(nil)

// NewFactory creates a factory whose machines roll yields with rng and scale
// them by the farming level from skills
func NewFactory(skills SkillSource, rng utils.Rand) *Factory {
	return &Factory{skills: skills, rng: rng}
}

// GetFor implements automate.Factory
func (f *Factory) GetFor(obj domain.Placeable, location *domain.Location, tile domain.Vector2) (automate.Machine, bool) {
	pot, ok := obj.(*domain.IndoorPot)
	if !ok || pot == nil {
		return nil, false
	}
	return NewIndoorPotMachine(pot, location, tile, f.skills, f.rng), true
}
