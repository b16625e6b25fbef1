package game

// Rect is an obstacle placement in cells: lower-left corner plus size.
type Rect struct {
	X, Y int
	W, H int
}

// Box returns the inclusive cell range covered by r.
func (r Rect) Box() BoundingBox {
	return BoundingBox{
		Lower: GameLocation{X: r.X, Y: r.Y},
		Upper: GameLocation{X: r.X + r.W - 1, Y: r.Y + r.H - 1},
	}
}

// TeleporterSpec pairs a trigger cell outside the walkable area with the
// cell inside it where the player reappears.
type TeleporterSpec struct {
	Trigger GameLocation
	End     GameLocation
}

// Layout is the static level definition.
type Layout struct {
	Upper       GameLocation // walkable area is (0,0)..Upper
	Obstacles   []Rect
	Teleporters []TeleporterSpec
}

// DefaultLayout returns the maze.
func DefaultLayout() Layout {
	return Layout{
		Upper: GameLocation{X: 25, Y: 28},
		Obstacles: []Rect{
			// Top left.
			{1, 25, 4, 3},
			{6, 25, 5, 3},
			{1, 22, 4, 2},
			{6, 16, 2, 8},
			// Top middle.
			{8, 19, 3, 2},
			{9, 22, 8, 2},
			{12, 19, 2, 3},
			// Top right.
			{12, 25, 2, 4},
			{15, 25, 5, 3},
			{21, 25, 4, 3},
			{21, 22, 4, 2},
			{18, 16, 2, 8},
			{15, 19, 3, 2},
			// Base.
			{9, 13, 8, 5},
			// Outer edges around the tunnel.
			{0, 16, 5, 5},
			{21, 16, 5, 5},
			{0, 10, 5, 5},
			{21, 10, 5, 5},
			// Bottom middle.
			{9, 10, 8, 2},
			{12, 7, 2, 3},
			{9, 4, 8, 2},
			{12, 1, 2, 3},
			// Bottom left.
			{6, 10, 2, 5},
			{1, 7, 4, 2},
			{3, 4, 2, 3},
			{0, 4, 2, 2},
			{1, 1, 10, 2},
			{6, 7, 5, 2},
			{6, 3, 2, 3},
			// Bottom right.
			{18, 10, 2, 5},
			{21, 7, 4, 2},
			{21, 4, 2, 3},
			{24, 4, 2, 2},
			{15, 1, 10, 2},
			{15, 7, 5, 2},
			{18, 3, 2, 3},
		},
		Teleporters: []TeleporterSpec{
			{Trigger: GameLocation{X: 26, Y: 15}, End: GameLocation{X: 0, Y: 15}},
			{Trigger: GameLocation{X: -1, Y: 15}, End: GameLocation{X: 25, Y: 15}},
		},
	}
}
