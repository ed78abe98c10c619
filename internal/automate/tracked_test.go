package automate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
)

func TestMachineState_String(t *testing.T) {
	assert.Equal(t, "disabled", Disabled.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "processing", Processing.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "unknown", MachineState(42).String())
}

func TestTrackedItem_CommitOnce(t *testing.T) {
	commits := 0
	item := domain.NewObject(24, "Parsnip", 3, 0)
	tracked := NewTrackedItem(item, func(domain.Item) { commits++ })

	tracked.Reduce(1)
	assert.Equal(t, 2, tracked.Count())
	assert.Equal(t, 0, commits, "Partial reduction does not commit")

	tracked.Reduce(2)
	assert.Equal(t, 0, tracked.Count())
	assert.Equal(t, 1, commits)
	assert.True(t, tracked.Settled())

	tracked.Commit()
	tracked.Reduce(1)
	assert.Equal(t, 1, commits, "Commit fires at most once")
}

func TestTrackedItem_DiscardBlocksCommit(t *testing.T) {
	commits := 0
	tracked := NewTrackedItem(domain.NewObject(24, "Parsnip", 1, 0), func(domain.Item) { commits++ })

	tracked.Discard()
	tracked.Commit()

	assert.Equal(t, 0, commits)
	assert.True(t, tracked.Settled())
}

func TestTrackedItem_NilCallbackAndItem(t *testing.T) {
	tracked := NewTrackedItem(nil, nil)
	assert.Equal(t, 0, tracked.Count())
	assert.NotPanics(t, func() {
		tracked.Reduce(1)
		tracked.Commit()
	})
}

func TestChestStorage_GetItems(t *testing.T) {
	can := domain.NewWateringCan()
	seeds := domain.NewObject(472, "Parsnip Seeds", 2, 0)
	first := domain.NewChest()
	first.Items = []domain.Item{seeds}
	second := domain.NewChest()
	second.Items = []domain.Item{can}

	stacks := NewChestStorage(first, second).GetItems()

	require.Len(t, stacks, 2)
	assert.Same(t, seeds, stacks[0].Unwrap())
	assert.Same(t, can, stacks[1].Unwrap())

	stacks[0].Reduce(2)
	assert.Empty(t, first.Items, "Fully consumed stacks leave the chest")
}

func TestChestStorage_Push(t *testing.T) {
	t.Run("moves output and commits", func(t *testing.T) {
		chest := domain.NewChest()
		committed := false
		out := NewTrackedItem(domain.NewObject(24, "Parsnip", 3, 0), func(domain.Item) { committed = true })

		require.True(t, NewChestStorage(chest).Push(out))

		assert.True(t, committed)
		assert.Equal(t, 3, chest.Count("Parsnip"))
		assert.Equal(t, 0, out.Count())
	})

	t.Run("merges into existing stack", func(t *testing.T) {
		chest := domain.NewChest()
		require.NoError(t, chest.Add(domain.NewObject(24, "Parsnip", 2, 0)))

		require.True(t, NewChestStorage(chest).Push(NewTrackedItem(domain.NewObject(24, "Parsnip", 3, 0), nil)))

		assert.Len(t, chest.Items, 1)
		assert.Equal(t, 5, chest.Count("Parsnip"))
	})

	t.Run("full chest rejects without commit", func(t *testing.T) {
		chest := &domain.Chest{Capacity: 1}
		require.NoError(t, chest.Add(domain.NewWateringCan()))
		committed := false
		out := NewTrackedItem(domain.NewObject(24, "Parsnip", 1, 0), func(domain.Item) { committed = true })

		assert.False(t, NewChestStorage(chest).Push(out))
		assert.False(t, committed)
		assert.Equal(t, 1, out.Count())
	})

	t.Run("falls through to next chest", func(t *testing.T) {
		full := &domain.Chest{Capacity: 0}
		open := domain.NewChest()

		require.True(t, NewChestStorage(full, open).Push(NewTrackedItem(domain.NewObject(24, "Parsnip", 1, 0), nil)))
		assert.Equal(t, 1, open.Count("Parsnip"))
	})
}
