package automate

import "github.com/osse101/AutomateGardenPot_Go/internal/domain"

// Storage is the set of containers connected to a machine group
type Storage interface {
	// GetItems returns the available stacks in container order
	GetItems() []TrackedStack
	// Push moves a whole output stack into storage, reducing it on success
	Push(out Output) bool
}

// ChestStorage exposes one or more chests as a single storage
type ChestStorage struct {
	chests []*domain.Chest
}

// NewChestStorage creates storage over the given chests
func NewChestStorage(chests ...*domain.Chest) *ChestStorage {
	return &ChestStorage{chests: chests}
}

// GetItems implements Storage
func (s *ChestStorage) GetItems() []TrackedStack {
	var stacks []TrackedStack
	for _, chest := range s.chests {
		chest := chest
		for _, item := range chest.Items {
			stacks = append(stacks, NewTrackedItem(item, func(used domain.Item) {
				chest.Remove(used)
			}))
		}
	}
	return stacks
}

// Push implements Storage
func (s *ChestStorage) Push(out Output) bool {
	count := out.Count()
	if count <= 0 || out.Sample() == nil {
		return false
	}

	for _, chest := range s.chests {
		if err := chest.Add(out.Sample().Copy()); err == nil {
			out.Reduce(count)
			return true
		}
	}
	return false
}
