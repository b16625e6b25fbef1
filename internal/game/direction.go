package game

// Direction is a facing, or a turn command relative to the current facing
// (Up = forward, Down = reverse, Left/Right = quarter turns).
type Direction int

const (
	Down Direction = iota
	Left
	Right
	Up
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	}
	return "unknown"
}

// Opposite returns the facing after a half turn.
func Opposite(d Direction) Direction {
	switch d {
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return Down
}

// RotateLeft returns the facing after a quarter turn to the left.
func RotateLeft(d Direction) Direction {
	switch d {
	case Down:
		return Right
	case Left:
		return Down
	case Right:
		return Up
	}
	return Left
}

// RotateRight returns the facing after a quarter turn to the right.
func RotateRight(d Direction) Direction {
	switch d {
	case Down:
		return Left
	case Left:
		return Up
	case Right:
		return Down
	}
	return Right
}

// ResolveDirectionInput maps a turn command onto an absolute facing.
func ResolveDirectionInput(current, turn Direction) Direction {
	switch turn {
	case Up:
		return current
	case Down:
		return Opposite(current)
	case Left:
		return RotateLeft(current)
	}
	return RotateRight(current)
}

// Step returns the cell one step from loc along d.
func (d Direction) Step(loc GameLocation) GameLocation {
	switch d {
	case Up:
		return GameLocation{X: loc.X, Y: loc.Y + 1}
	case Down:
		return GameLocation{X: loc.X, Y: loc.Y - 1}
	case Left:
		return GameLocation{X: loc.X - 1, Y: loc.Y}
	}
	return GameLocation{X: loc.X + 1, Y: loc.Y}
}
