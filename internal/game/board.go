package game

import (
	"errors"
	"fmt"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Board is the static level: geometry, obstacles, teleporters and the
// walkable bounds. It does not change after construction.
type Board struct {
	shapes      []*Shape
	obstacles   []*Obstacle
	teleporters []*Teleporter
	bounds      BoundingBox
}

// NewBoard builds the level geometry for layout.
func NewBoard(layout Layout, tex Textures) (*Board, error) {
	b := &Board{
		bounds: BoundingBox{Upper: layout.Upper},
	}

	ux := float32(layout.Upper.X)
	uy := float32(layout.Upper.Y)

	floor := MakeSquare(tex.Black)
	floor.Transform(Scale(ux+1, uy+1, 1))
	b.shapes = append(b.shapes, floor)

	for _, ts := range layout.Teleporters {
		pad := MakeSquare(tex.Black)
		pad.Transform(Translate(float32(ts.Trigger.X), float32(ts.Trigger.Y), 1).Mul4(Scale(1, 1, 2)))
		b.shapes = append(b.shapes, pad)
		b.teleporters = append(b.teleporters, NewTeleporter(pad, ts.Trigger, ts.End))
	}

	b.shapes = append(b.shapes, makeWalls(tex.Wood, ux, uy)...)

	for _, r := range layout.Obstacles {
		sq := MakeSquare(tex.Brick)
		sq.Transform(Translate(float32(r.X), float32(r.Y), 1).Mul4(Scale(float32(r.W), float32(r.H), 2)))
		b.obstacles = append(b.obstacles, NewObstacle(sq, r.Box()))
	}
	for _, o := range b.obstacles {
		b.shapes = append(b.shapes, o.Shape)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// makeWalls surrounds the walkable area, leaving a one-cell tunnel at
// half height on the left and right.
func makeWalls(tex Texture, x, y float32) []*Shape {
	half := y / 2
	placements := [6][6]float32{
		{0, -1, 1, x + 1, 1, 2},          // bottom
		{0, y + 1, 1, x + 1, 1, 2},       // top
		{-1, half + 2, 1, 1, half, 2},    // left top
		{-1, -1, 1, 1, half + 2, 2},      // left bottom
		{x + 1, half + 2, 1, 1, half, 2}, // right top
		{x + 1, -1, 1, 1, half + 2, 2},   // right bottom
	}
	walls := make([]*Shape, 0, len(placements))
	for _, p := range placements {
		w := MakeSquare(tex)
		w.Transform(Translate(p[0], p[1], p[2]).Mul4(Scale(p[3], p[4], p[5])))
		walls = append(walls, w)
	}
	return walls
}

// Validate checks that every teleporter triggers from just outside the
// walkable area and lands on a walkable cell.
func (b *Board) Validate() error {
	for _, t := range b.teleporters {
		if b.bounds.Contains(t.Location) {
			return fmt.Errorf("teleporter trigger %v inside bounds: %w", t.Location, ErrInvalidLayout)
		}
		if !b.IsValidLocation(t.End) {
			return fmt.Errorf("teleporter end %v not walkable: %w", t.End, ErrInvalidLayout)
		}
	}
	return nil
}

// HasObstacleAtLocation reports whether any obstacle covers loc.
func (b *Board) HasObstacleAtLocation(loc GameLocation) bool {
	for _, o := range b.obstacles {
		if o.Box.Contains(loc) {
			return true
		}
	}
	return false
}

// Teleporter returns the teleporter triggered at loc.
func (b *Board) Teleporter(loc GameLocation) (*Teleporter, bool) {
	for _, t := range b.teleporters {
		if t.Location.Equals(loc) {
			return t, true
		}
	}
	return nil, false
}

// IsValidLocation reports whether loc is walkable.
func (b *Board) IsValidLocation(loc GameLocation) bool {
	if b.HasObstacleAtLocation(loc) {
		return false
	}
	return b.bounds.Contains(loc)
}

func (b *Board) Bounds() BoundingBox        { return b.bounds }
func (b *Board) Shapes() []*Shape           { return b.shapes }
func (b *Board) Obstacles() []*Obstacle     { return b.obstacles }
func (b *Board) Teleporters() []*Teleporter { return b.teleporters }
