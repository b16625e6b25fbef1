package game

import "github.com/go-gl/mathgl/mgl32"

// CameraView selects one of the fixed views.
type CameraView int

const (
	TopDown CameraView = iota
	Perspective
	Everything
)

func (v CameraView) String() string {
	switch v {
	case TopDown:
		return "top-down"
	case Perspective:
		return "perspective"
	case Everything:
		return "everything"
	}
	return "unknown"
}

// ToCamCoords maps a cell to its render-space centre at camera height.
func ToCamCoords(loc GameLocation) mgl32.Vec3 {
	return mgl32.Vec3{
		CellOrigin + CellSize*float32(loc.X),
		CellOrigin + CellSize*float32(loc.Y),
		CameraZ,
	}
}

// Camera holds the matrices produced for a view.
type Camera struct {
	Projection    mgl32.Mat4
	View          mgl32.Mat4
	PlayerVisible bool
}

// CameraFor computes the projection and view matrices for view, given the
// player's cell and facing, the board bounds and the viewport aspect.
func CameraFor(view CameraView, loc GameLocation, facing Direction, bounds BoundingBox, aspect float32) Camera {
	switch view {
	case Perspective:
		// First person: look one cell ahead, the player cannot see itself.
		eye := ToCamCoords(loc)
		at := ToCamCoords(facing.Step(loc))
		proj := Ortho(CameraLeft, CameraRight, CameraBottom, CameraTop, CameraNear, CameraFar).
			Mul4(PerspectiveMatrix(PerspectiveFovy, aspect, PerspectiveNear, PerspectiveFar))
		return Camera{
			Projection: proj,
			View:       LookAt(eye, at, mgl32.Vec3{0, 0, 1}),
		}

	case TopDown:
		at := ToCamCoords(loc)
		eye := at.Add(mgl32.Vec3{0, 0, TopDownHeight})
		return Camera{
			Projection:    Ortho(CameraLeft, CameraRight, CameraBottom, CameraTop, CameraNear, CameraFar),
			View:          LookAt(eye, at, mgl32.Vec3{0, 1, 1}),
			PlayerVisible: true,
		}
	}

	// Everything: the whole board, fixed.
	ux := float32(bounds.Upper.X)
	uy := float32(bounds.Upper.Y)
	return Camera{
		Projection: Ortho(
			-ux-EverythingMargin, ux+EverythingMargin,
			-uy-EverythingMargin, uy+EverythingMargin,
			CameraNear, CameraFar),
		View:          Translate(-ux+2, -uy+2, 0),
		PlayerVisible: true,
	}
}
