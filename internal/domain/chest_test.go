package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChest_Add(t *testing.T) {
	t.Run("merges like stacks", func(t *testing.T) {
		chest := NewChest()
		require.NoError(t, chest.Add(NewObject(256, "Tomato", 2, QualityNormal)))
		require.NoError(t, chest.Add(NewObject(256, "Tomato", 3, QualityNormal)))

		assert.Len(t, chest.Items, 1)
		assert.Equal(t, 5, chest.Count("Tomato"))
	})

	t.Run("keeps different qualities and colours apart", func(t *testing.T) {
		chest := NewChest()
		require.NoError(t, chest.Add(NewObject(256, "Tomato", 1, QualityNormal)))
		require.NoError(t, chest.Add(NewObject(256, "Tomato", 1, QualityGold)))
		require.NoError(t, chest.Add(NewColoredObject(595, "Fairy Rose", 1, Color{R: 1, A: 255})))
		require.NoError(t, chest.Add(NewColoredObject(595, "Fairy Rose", 1, Color{R: 2, A: 255})))
		require.NoError(t, chest.Add(NewColoredObject(595, "Fairy Rose", 1, Color{R: 2, A: 255})))

		assert.Len(t, chest.Items, 4)
		assert.Equal(t, 3, chest.Count("Fairy Rose"))
	})

	t.Run("tools never stack", func(t *testing.T) {
		chest := NewChest()
		require.NoError(t, chest.Add(NewWateringCan()))
		require.NoError(t, chest.Add(NewWateringCan()))
		assert.Len(t, chest.Items, 2)
	})

	t.Run("full chest still merges", func(t *testing.T) {
		chest := &Chest{Capacity: 1}
		require.NoError(t, chest.Add(NewObject(24, "Parsnip", 1, QualityNormal)))

		require.NoError(t, chest.Add(NewObject(24, "Parsnip", 1, QualityNormal)))
		err := chest.Add(NewObject(256, "Tomato", 1, QualityNormal))

		assert.ErrorIs(t, err, ErrChestFull)
		assert.Equal(t, 2, chest.Count("Parsnip"))
	})

	t.Run("rejects empty stacks", func(t *testing.T) {
		chest := NewChest()
		assert.ErrorIs(t, chest.Add(nil), ErrInvalidObject)
		assert.ErrorIs(t, chest.Add(NewObject(24, "Parsnip", 0, QualityNormal)), ErrInvalidObject)
	})
}

func TestChest_Remove(t *testing.T) {
	chest := NewChest()
	first := NewObject(24, "Parsnip", 1, QualityNormal)
	can := NewWateringCan()
	require.NoError(t, chest.Add(first))
	require.NoError(t, chest.Add(can))

	chest.Remove(NewWateringCan())
	assert.Len(t, chest.Items, 2, "Only the same instance is removed")

	chest.Remove(can)
	assert.Equal(t, []Item{first}, chest.Items)
}

func TestWateringCan(t *testing.T) {
	can := NewWateringCan()
	can.UseWater(15)
	assert.Equal(t, WaterCapacityBasic-15, can.WaterLeft())

	can.UseWater(1000)
	assert.Equal(t, 0, can.WaterLeft())

	can.Refill()
	assert.Equal(t, WaterCapacityBasic, can.WaterLeft())

	copied := can.Copy().(*WateringCan)
	copied.UseWater(1)
	assert.Equal(t, WaterCapacityBasic, can.WaterLeft(), "Copies do not share water")
}
