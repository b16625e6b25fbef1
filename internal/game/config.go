package game

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "pac3d"
)

// Vertex buffers are allocated once at this size (in vertices).
// 1,000,000 bytes of vec4 float32 positions.
const (
	MaxVertices        = 62500
	FloatsPerVertex    = 4
	FloatsPerTexCoord  = 2
	SphereSubdivisions = 4
)

// Frustum constants shared by all camera views.
const (
	CameraNear   = -10.0
	CameraFar    = 10.0
	CameraLeft   = -6.0
	CameraRight  = 6.0
	CameraTop    = 6.0
	CameraBottom = -6.0

	PerspectiveFovy = 25.0 // degrees
	PerspectiveNear = -2.0
	PerspectiveFar  = 2.0

	TopDownHeight    = 2.0
	EverythingMargin = 5.0
)

// Grid to render space: render = CellOrigin + CellSize*grid.
const (
	CellOrigin = -4.0
	CellSize   = 2.0
	CameraZ    = 4.0
)

// Food placement inside the pre-scene model space.
const (
	FoodScale   = 0.25
	FoodBaseX   = 1.5
	FoodBaseY   = 1.5
	FoodBaseZ   = 5.0
	FoodSpacing = 4.0
)
