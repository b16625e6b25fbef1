package game

import "github.com/go-gl/mathgl/mgl32"

// ElementKind tags what a board element is.
type ElementKind int

const (
	KindObstacle ElementKind = iota
	KindTeleporter
	KindPlayer
	KindFood
)

func (k ElementKind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindTeleporter:
		return "teleporter"
	case KindPlayer:
		return "player"
	case KindFood:
		return "food"
	}
	return "unknown"
}

// Element ties a shape to a grid cell.
type Element struct {
	Kind     ElementKind
	Shape    *Shape
	Location GameLocation
}

// Obstacle blocks every cell of Box. Its location is Box.Lower.
type Obstacle struct {
	Element
	Box BoundingBox
}

func NewObstacle(shape *Shape, box BoundingBox) *Obstacle {
	return &Obstacle{
		Element: Element{Kind: KindObstacle, Shape: shape, Location: box.Lower},
		Box:     box,
	}
}

// Teleporter sends a player stepping onto Location to End.
type Teleporter struct {
	Element
	End GameLocation
}

func NewTeleporter(shape *Shape, trigger, end GameLocation) *Teleporter {
	return &Teleporter{
		Element: Element{Kind: KindTeleporter, Shape: shape, Location: trigger},
		End:     end,
	}
}

// Food is eaten once; an eaten item stays in place with its shape hidden.
type Food struct {
	Element
}

func NewFood(shape *Shape, loc GameLocation) *Food {
	return &Food{Element{Kind: KindFood, Shape: shape, Location: loc}}
}

func (f *Food) Eaten() bool { return !f.Shape.Visible() }

// Player moves its own shape along with its location.
type Player struct {
	Element
	Facing Direction

	start       GameLocation
	startFacing Direction
}

func NewPlayer(shape *Shape, start GameLocation, facing Direction) *Player {
	return &Player{
		Element:     Element{Kind: KindPlayer, Shape: shape, Location: start},
		Facing:      facing,
		start:       start,
		startFacing: facing,
	}
}

// SetLocation moves the player and translates its shape by the cell delta.
func (p *Player) SetLocation(next GameLocation) {
	dx := float32(next.X-p.Location.X) * CellSize
	dy := float32(next.Y-p.Location.Y) * CellSize
	if dx != 0 || dy != 0 {
		p.Shape.Transform(mgl32.Translate3D(dx, dy, 0))
	}
	p.Location = next
}

// Reset restores the start location and facing.
func (p *Player) Reset() {
	p.SetLocation(p.start)
	p.Facing = p.startFacing
}

func (p *Player) StartLocation() GameLocation { return p.start }
func (p *Player) StartFacing() Direction      { return p.startFacing }
