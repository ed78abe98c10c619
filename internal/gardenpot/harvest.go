package gardenpot

import (
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
)

// SkillSource reports the farming level that scales harvest yields
type SkillSource interface {
	FarmingLevel() int
}

// harvestQuantity rolls the number of items a ripe crop yields.
// Crops whose min and max are both at most 1 always yield 1; otherwise the
// roll is uniform over [min, max+bonus], where the bonus is one item per
// MaxHarvestIncreasePerFarmingLevel farming levels.
func harvestQuantity(crop *domain.Crop, farmingLevel int, rng utils.Rand) int {
	if crop.MinHarvest <= 1 && crop.MaxHarvest <= 1 {
		return 1
	}

	increase := utils.FloorDiv(farmingLevel, crop.MaxHarvestIncreasePerFarmingLevel)
	upper := max(crop.MinHarvest, crop.MaxHarvest+increase)
	return utils.RandomInt(rng, crop.MinHarvest, upper)
}

// harvestItem builds the produce stack for a ripe crop
func harvestItem(crop *domain.Crop, quantity int) domain.Item {
	if crop.ProgramColored {
		return domain.NewColoredObject(crop.IndexOfHarvest, crop.HarvestName, quantity, crop.TintColor)
	}
	return domain.NewObject(crop.IndexOfHarvest, crop.HarvestName, quantity, harvestQuality)
}

// applyHarvest resets a regrowing crop after its produce has been taken.
// Crops that do not regrow are left for the host to clear.
func applyHarvest(crop *domain.Crop, tile domain.Vector2) {
	if !crop.Regrows() {
		return
	}
	crop.FullyGrown = true
	if crop.DayOfCurrentPhase == crop.RegrowAfterHarvest {
		crop.UpdateDrawMath(tile)
	}
	crop.DayOfCurrentPhase = crop.RegrowAfterHarvest
}
