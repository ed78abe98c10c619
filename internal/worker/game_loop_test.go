package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AutomateGardenPot_Go/internal/automate"
	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/event"
	"github.com/osse101/AutomateGardenPot_Go/internal/gardenpot"
)

func newTestLoop(t *testing.T, ticksPerDay int) (*GameLoop, *domain.IndoorPot, *domain.Chest, *event.MemoryBus) {
	t.Helper()
	loc := domain.NewLocation("Greenhouse")
	pot := domain.NewIndoorPot()
	pot.HoeDirt.Crop = &domain.Crop{
		Name:               "parsnip",
		PhaseDays:          []int{1, 1, domain.FinalPhaseDays},
		RegrowAfterHarvest: domain.NoRegrow,
		HarvestName:        "Parsnip",
		IndexOfHarvest:     24,
	}
	require.NoError(t, loc.Place(domain.Vector2{}, pot))

	chest := domain.NewChest()
	require.NoError(t, chest.Add(domain.NewWateringCan()))

	reg := automate.NewRegistry(nil)
	reg.AddFactory(gardenpot.NewFactory(nil, nil))
	bus := event.NewMemoryBus()
	group := automate.NewGroup(loc, reg, automate.NewChestStorage(chest), bus)
	group.Discover(context.Background())

	return NewGameLoop(loc, group, bus, ticksPerDay), pot, chest, bus
}

func TestGameLoop_DayRollover(t *testing.T) {
	loop, pot, _, bus := newTestLoop(t, 2)
	var days []int
	bus.Subscribe(event.DayStarted, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.DayStartedPayloadV1](evt.Payload)
		require.NoError(t, err)
		days = append(days, payload.Day)
		return nil
	})
	ctx := context.Background()

	require.NoError(t, loop.Process(ctx))
	assert.Equal(t, 1, loop.Day())
	assert.True(t, pot.HoeDirt.Watered())

	require.NoError(t, loop.Process(ctx))
	assert.Equal(t, 2, loop.Day())
	assert.False(t, pot.HoeDirt.Watered())
	assert.Equal(t, 1, pot.Crop().CurrentPhase)

	assert.Equal(t, []int{2}, days)
}

func TestGameLoop_HarvestsIntoChest(t *testing.T) {
	loop, _, chest, _ := newTestLoop(t, 1)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, loop.Process(ctx))
	}

	assert.Equal(t, 1, chest.Count("Parsnip"))
	totals := loop.Totals()
	assert.Equal(t, 3, totals.Polled)
	assert.Equal(t, 2, totals.Fed)
	assert.Equal(t, 1, totals.Harvested)
	assert.Equal(t, 4, loop.Day())
}
