package domain

import "fmt"

// Vector2 is a tile coordinate inside a location
type Vector2 struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String implements fmt.Stringer
func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Rectangle is a tile area inside a location
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TileRect returns the 1x1 area covering a single tile
func TileRect(tile Vector2) Rectangle {
	return Rectangle{X: tile.X, Y: tile.Y, Width: 1, Height: 1}
}

// Contains reports whether the tile lies within the rectangle
func (r Rectangle) Contains(tile Vector2) bool {
	return tile.X >= r.X && tile.X < r.X+r.Width && tile.Y >= r.Y && tile.Y < r.Y+r.Height
}
