package game

import "fmt"

// GameLocation is a grid cell.
type GameLocation struct {
	X, Y int
}

func (l GameLocation) Equals(o GameLocation) bool {
	return l.X == o.X && l.Y == o.Y
}

func (l GameLocation) Add(dx, dy int) GameLocation {
	return GameLocation{X: l.X + dx, Y: l.Y + dy}
}

func (l GameLocation) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// BoundingBox is an inclusive axis-aligned range of cells.
type BoundingBox struct {
	Lower, Upper GameLocation
}

// Contains reports whether loc lies inside the box, edges included.
func (b BoundingBox) Contains(loc GameLocation) bool {
	return loc.X >= b.Lower.X && loc.X <= b.Upper.X &&
		loc.Y >= b.Lower.Y && loc.Y <= b.Upper.Y
}

// Width and Height count cells.
func (b BoundingBox) Width() int  { return b.Upper.X - b.Lower.X + 1 }
func (b BoundingBox) Height() int { return b.Upper.Y - b.Lower.Y + 1 }
