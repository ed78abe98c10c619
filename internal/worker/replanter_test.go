package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AutomateGardenPot_Go/internal/crops"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/gardenpot"
)

func testCatalog() *crops.Catalog {
	regrow := 3
	return crops.NewCatalog(&crops.Config{Crops: []crops.Def{
		{InternalName: "parsnip", HarvestIndex: 24, PhaseDays: []int{1, 1}},
		{InternalName: "hot_pepper", HarvestIndex: 260, PhaseDays: []int{1}, RegrowAfterHarvest: &regrow},
	}})
}

func harvested(loc string, tile domain.Vector2) event.Event {
	return event.NewMachineHarvestedEvent(gardenpot.MachineTypeID, loc, tile, "Parsnip", 1)
}

func TestReplanter(t *testing.T) {
	ctx := context.Background()
	catalog := testCatalog()

	setup := func(t *testing.T, cropName string) (*domain.Location, *domain.IndoorPot) {
		t.Helper()
		loc := domain.NewLocation("Greenhouse")
		pot := domain.NewIndoorPot()
		_, err := catalog.Plant(cropName, pot.HoeDirt, nil)
		require.NoError(t, err)
		pot.HoeDirt.Crop.CurrentPhase = pot.HoeDirt.Crop.LastPhase()
		require.NoError(t, loc.Place(domain.Vector2{X: 1, Y: 1}, pot))
		return loc, pot
	}

	t.Run("replants a single harvest crop", func(t *testing.T) {
		loc, pot := setup(t, "parsnip")
		old := pot.Crop()
		r := NewReplanter(loc, catalog, nil)

		require.NoError(t, r.HandleEvent(ctx, harvested("Greenhouse", domain.Vector2{X: 1, Y: 1})))

		require.NotNil(t, pot.Crop())
		assert.NotSame(t, old, pot.Crop())
		assert.Equal(t, 0, pot.Crop().CurrentPhase)
		assert.False(t, pot.HoeDirt.ReadyForHarvest())
	})

	t.Run("clears without a catalog", func(t *testing.T) {
		loc, pot := setup(t, "parsnip")
		r := NewReplanter(loc, nil, nil)

		require.NoError(t, r.HandleEvent(ctx, harvested("Greenhouse", domain.Vector2{X: 1, Y: 1})))

		assert.Nil(t, pot.Crop())
	})

	t.Run("leaves regrowing crops", func(t *testing.T) {
		loc, pot := setup(t, "hot_pepper")
		old := pot.Crop()
		r := NewReplanter(loc, catalog, nil)

		require.NoError(t, r.HandleEvent(ctx, harvested("Greenhouse", domain.Vector2{X: 1, Y: 1})))

		assert.Same(t, old, pot.Crop())
	})

	t.Run("ignores other locations and tiles", func(t *testing.T) {
		loc, pot := setup(t, "parsnip")
		old := pot.Crop()
		r := NewReplanter(loc, catalog, nil)

		require.NoError(t, r.HandleEvent(ctx, harvested("Farm", domain.Vector2{X: 1, Y: 1})))
		require.NoError(t, r.HandleEvent(ctx, harvested("Greenhouse", domain.Vector2{X: 9, Y: 9})))

		assert.Same(t, old, pot.Crop())
	})

	t.Run("subscribes to the bus", func(t *testing.T) {
		loc, pot := setup(t, "parsnip")
		bus := event.NewMemoryBus()
		NewReplanter(loc, nil, nil).Register(bus)

		require.NoError(t, bus.Publish(ctx, harvested("Greenhouse", domain.Vector2{X: 1, Y: 1})))

		assert.Nil(t, pot.Crop())
	})
}
