package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_Place(t *testing.T) {
	loc := NewLocation("Greenhouse")
	pot := NewIndoorPot()
	tile := Vector2{X: 2, Y: 5}

	require.NoError(t, loc.Place(tile, pot))
	assert.ErrorIs(t, loc.Place(tile, NewChest()), ErrTileOccupied)
	assert.ErrorIs(t, loc.Place(Vector2{}, nil), ErrInvalidObject)

	obj, ok := loc.ObjectAt(tile)
	require.True(t, ok)
	assert.Same(t, pot, obj)

	removed, err := loc.RemoveAt(tile)
	require.NoError(t, err)
	assert.Same(t, pot, removed)

	_, err = loc.RemoveAt(tile)
	assert.ErrorIs(t, err, ErrNoPlaceable)
}

func TestLocation_ObjectsRowMajor(t *testing.T) {
	loc := NewLocation("Greenhouse")
	tiles := []Vector2{{X: 3, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 5, Y: 0}}
	for _, tile := range tiles {
		require.NoError(t, loc.Place(tile, NewIndoorPot()))
	}

	var got []Vector2
	for _, p := range loc.Objects() {
		got = append(got, p.Tile)
	}

	assert.Equal(t, []Vector2{{X: 5, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 1}, {X: 0, Y: 2}}, got)
}

func TestLocation_DayUpdate(t *testing.T) {
	loc := NewLocation("Greenhouse")
	pot := NewIndoorPot()
	pot.HoeDirt.Crop = &Crop{PhaseDays: []int{1, FinalPhaseDays}, RegrowAfterHarvest: NoRegrow}
	pot.HoeDirt.State = DirtWatered
	require.NoError(t, loc.Place(Vector2{}, pot))
	require.NoError(t, loc.Place(Vector2{X: 1}, NewChest()))

	loc.DayUpdate()

	assert.True(t, pot.HoeDirt.ReadyForHarvest())
	assert.False(t, pot.HoeDirt.Watered())
}

func TestGeometry(t *testing.T) {
	tile := Vector2{X: 4, Y: -2}
	assert.Equal(t, "(4, -2)", tile.String())

	rect := TileRect(tile)
	assert.True(t, rect.Contains(tile))
	assert.False(t, rect.Contains(Vector2{X: 5, Y: -2}))
}
