package domain

import (
	"fmt"
	"sort"
)

// Placeable is an object that occupies a tile in a location
type Placeable interface {
	Name() string
}

// DayUpdater is implemented by placeables that change overnight
type DayUpdater interface {
	DayUpdate(tile Vector2)
}

// PlacedObject pairs a placeable with its tile
type PlacedObject struct {
	Tile   Vector2
	Object Placeable
}

// Location is a map area holding placed objects
type Location struct {
	Name    string
	objects map[Vector2]Placeable
}

// NewLocation creates an empty location
func NewLocation(name string) *Location {
	return &Location{
		Name:    name,
		objects: make(map[Vector2]Placeable),
	}
}

// Place puts an object on a free tile
func (l *Location) Place(tile Vector2, obj Placeable) error {
	if obj == nil {
		return fmt.Errorf("%w: nil placeable", ErrInvalidObject)
	}
	if existing, ok := l.objects[tile]; ok {
		return fmt.Errorf("%w: %s at %s", ErrTileOccupied, existing.Name(), tile)
	}
	l.objects[tile] = obj
	return nil
}

// ObjectAt returns the object on a tile
func (l *Location) ObjectAt(tile Vector2) (Placeable, bool) {
	obj, ok := l.objects[tile]
	return obj, ok
}

// RemoveAt clears a tile
func (l *Location) RemoveAt(tile Vector2) (Placeable, error) {
	obj, ok := l.objects[tile]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPlaceable, tile)
	}
	delete(l.objects, tile)
	return obj, nil
}

// Objects returns every placed object in row-major tile order
func (l *Location) Objects() []PlacedObject {
	placed := make([]PlacedObject, 0, len(l.objects))
	for tile, obj := range l.objects {
		placed = append(placed, PlacedObject{Tile: tile, Object: obj})
	}
	sort.Slice(placed, func(i, j int) bool {
		if placed[i].Tile.Y != placed[j].Tile.Y {
			return placed[i].Tile.Y < placed[j].Tile.Y
		}
		return placed[i].Tile.X < placed[j].Tile.X
	})
	return placed
}

// DayUpdate runs the overnight update on every object
func (l *Location) DayUpdate() {
	for _, p := range l.Objects() {
		if u, ok := p.Object.(DayUpdater); ok {
			u.DayUpdate(p.Tile)
		}
	}
}
