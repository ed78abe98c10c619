package domain

import "fmt"

// Chest is a placeable container
type Chest struct {
	Items    []Item `json:"items"`
	Capacity int    `json:"capacity"`
}

// NewChest creates an empty chest with the default capacity
func NewChest() *Chest {
	return &Chest{Capacity: DefaultChestCapacity}
}

// Name implements Placeable
func (c *Chest) Name() string {
	return ItemNameChest
}

// Add merges the item into a matching stack or a free slot
func (c *Chest) Add(item Item) error {
	if item == nil || item.Stack() <= 0 {
		return fmt.Errorf("%w: empty stack", ErrInvalidObject)
	}

	if s, ok := item.(stacker); ok {
		for _, existing := range c.Items {
			if s.CanStackWith(existing) {
				existing.SetStack(existing.Stack() + item.Stack())
				return nil
			}
		}
	}

	if len(c.Items) >= c.Capacity {
		return fmt.Errorf("%w: %d/%d slots used", ErrChestFull, len(c.Items), c.Capacity)
	}
	c.Items = append(c.Items, item)
	return nil
}

// Remove drops the item from the chest if present
func (c *Chest) Remove(item Item) {
	for i, existing := range c.Items {
		if existing == item {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Count returns the total quantity of items with the given name
func (c *Chest) Count(name string) int {
	total := 0
	for _, item := range c.Items {
		if item.Name() == name {
			total += item.Stack()
		}
	}
	return total
}
