package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testGame struct {
	*Game
	backend *recordingBackend
	scores  []int
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()
	tg := &testGame{backend: &recordingBackend{}}
	g, err := NewDefaultGame(tg.backend, testTextures, 1, func(score int) {
		tg.scores = append(tg.scores, score)
	})
	require.NoError(t, err)
	tg.Game = g
	return tg
}

// place puts the player on loc facing d without running a move.
func (tg *testGame) place(loc GameLocation, d Direction) {
	tg.Player().SetLocation(loc)
	tg.Player().Facing = d
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, GameLocation{}, g.Location())
	assert.Equal(t, Up, g.Facing())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, Perspective, g.Camera())
	assert.False(t, g.Player().Shape.Visible(), "first person hides the player")
	assert.Empty(t, g.scores)

	assert.LessOrEqual(t, g.Scene().VertexCount(), MaxVertices)
	assert.Same(t, g.Player().Shape, g.Scene().Shapes()[0])
	assert.Equal(t, 1, g.backend.clears, "initial frame rendered")
	assert.Equal(t, 1, g.Scene().DirtyCount(), "only the hidden player is pending upload")
}

func TestFoodPlacement(t *testing.T) {
	g := newTestGame(t)
	b := g.Board()

	want := 0
	for x := 0; x <= 25; x++ {
		for y := 0; y <= 28; y++ {
			if !b.HasObstacleAtLocation(GameLocation{X: x, Y: y}) {
				want++
			}
		}
	}
	want-- // player start

	assert.Len(t, g.Food(), want)
	assert.Equal(t, want, g.RemainingFood())
	_, ok := g.FoodAt(GameLocation{})
	assert.False(t, ok, "no food under the player")
	_, ok = g.FoodAt(GameLocation{X: 1, Y: 1})
	assert.False(t, ok, "no food inside obstacles")

	f, ok := g.FoodAt(GameLocation{X: 0, Y: 1})
	require.True(t, ok)
	assert.Equal(t, KindFood, f.Kind)
	assert.Equal(t, testTextures.Pellet, f.Shape.Texture)

	// Food sits at the centre of its cell in render space.
	lo, hi := f.Shape.Bounds()
	centre := lo.Add(hi).Mul(0.5)
	cell := ToCamCoords(f.Location)
	assert.InDelta(t, cell.X(), centre.X(), 1e-4)
	assert.InDelta(t, cell.Y(), centre.Y(), 1e-4)
}

func TestMoveForwardEatsFood(t *testing.T) {
	g := newTestGame(t)

	g.Move(Up)
	assert.Equal(t, GameLocation{X: 0, Y: 1}, g.Location())
	assert.Equal(t, Up, g.Facing())
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, []int{1}, g.scores)

	f, _ := g.FoodAt(GameLocation{X: 0, Y: 1})
	assert.True(t, f.Eaten())
}

func TestEatingIsIdempotent(t *testing.T) {
	g := newTestGame(t)

	g.Move(Up) // (0,1)
	g.Move(Up) // (0,2)
	require.Equal(t, 2, g.Score())

	g.Move(Down) // turn around
	assert.Equal(t, GameLocation{X: 0, Y: 2}, g.Location())
	assert.Equal(t, Down, g.Facing())
	assert.Equal(t, 2, g.Score())

	g.Move(Up) // back onto (0,1)
	assert.Equal(t, GameLocation{X: 0, Y: 1}, g.Location())
	assert.Equal(t, 2, g.Score())
	assert.Equal(t, []int{1, 2}, g.scores)
}

func TestTurnDoesNotMove(t *testing.T) {
	g := newTestGame(t)

	g.Move(Right)
	assert.Equal(t, GameLocation{}, g.Location())
	assert.Equal(t, Right, g.Facing())

	g.Move(Left)
	assert.Equal(t, GameLocation{}, g.Location())
	assert.Equal(t, Up, g.Facing())
	assert.Zero(t, g.Score())
}

func TestObstacleBlocksMove(t *testing.T) {
	g := newTestGame(t)

	g.Move(Right) // face right
	g.Move(Up)    // (1,0)
	require.Equal(t, GameLocation{X: 1, Y: 0}, g.Location())

	g.Move(Left) // face up, (1,1) is an obstacle
	g.Move(Up)
	assert.Equal(t, GameLocation{X: 1, Y: 0}, g.Location())
	assert.Equal(t, Up, g.Facing())
}

func TestBoundsBlockMove(t *testing.T) {
	g := newTestGame(t)

	g.Move(Down) // face down
	g.Move(Up)
	assert.Equal(t, GameLocation{}, g.Location())

	g.place(GameLocation{X: 25, Y: 28}, Right)
	g.Move(Up)
	assert.Equal(t, GameLocation{X: 25, Y: 28}, g.Location())
}

func TestTeleport(t *testing.T) {
	g := newTestGame(t)
	var teleported []GameLocation
	g.Events().Subscribe(EventTeleported, func(e Event) {
		teleported = append(teleported, e.Location)
	})

	g.place(GameLocation{X: 0, Y: 15}, Left)
	g.Move(Up)
	assert.Equal(t, GameLocation{X: 25, Y: 15}, g.Location(), "lands on the end cell, not the trigger")
	assert.Equal(t, Left, g.Facing())
	assert.Equal(t, 1, g.Score(), "food at the landing cell is eaten")
	assert.Equal(t, []GameLocation{{X: 25, Y: 15}}, teleported)

	g.place(GameLocation{X: 25, Y: 15}, Right)
	g.Move(Up)
	assert.Equal(t, GameLocation{X: 0, Y: 15}, g.Location())
	assert.Len(t, teleported, 2)
}

func TestTurnSuppressesTeleport(t *testing.T) {
	g := newTestGame(t)

	// The look-ahead cell (-1,15) holds a teleporter, but turning wins.
	g.place(GameLocation{X: 0, Y: 15}, Left)
	g.Move(Right)
	assert.Equal(t, GameLocation{X: 0, Y: 15}, g.Location())
	assert.Equal(t, Up, g.Facing())

	g.place(GameLocation{X: 0, Y: 15}, Left)
	g.Move(Down)
	assert.Equal(t, GameLocation{X: 0, Y: 15}, g.Location())
	assert.Equal(t, Right, g.Facing())
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	resets := 0
	g.Events().Subscribe(EventReset, func(Event) { resets++ })

	g.Move(Up)
	g.Move(Up)
	g.Move(Right)
	g.SetCamera(Everything)
	require.Equal(t, 2, g.Score())

	g.Reset()
	assert.Equal(t, GameLocation{}, g.Location())
	assert.Equal(t, Up, g.Facing())
	assert.Zero(t, g.Score())
	assert.Equal(t, len(g.Food()), g.RemainingFood())
	assert.Equal(t, []int{1, 2, 0}, g.scores)
	assert.Equal(t, 1, resets)
	assert.Equal(t, Everything, g.Camera(), "reset keeps the camera")

	// The player shape is back over its start cell.
	lo, hi := g.Player().Shape.Bounds()
	centre := lo.Add(hi).Mul(0.5)
	assert.InDelta(t, -4, centre.X(), 1e-4)
	assert.InDelta(t, -4, centre.Y(), 1e-4)
}

func TestResetKeepsSceneBuffers(t *testing.T) {
	g := newTestGame(t)
	shapes := len(g.Scene().Shapes())
	verts := g.Scene().VertexCount()

	g.Move(Up)
	g.Reset()
	assert.Len(t, g.Scene().Shapes(), shapes)
	assert.Equal(t, verts, g.Scene().VertexCount())
}

func TestSetCamera(t *testing.T) {
	g := newTestGame(t)

	g.SetCamera(TopDown)
	assert.Equal(t, TopDown, g.Camera())
	assert.True(t, g.Player().Shape.Visible())
	assert.Equal(t, CameraFor(TopDown, g.Location(), g.Facing(), g.Board().Bounds(), 1).View, g.backend.view)

	g.Move(Up)
	g.SetCamera(Perspective)
	assert.False(t, g.Player().Shape.Visible())
	want := CameraFor(Perspective, GameLocation{X: 0, Y: 1}, Up, g.Board().Bounds(), 1)
	assert.Equal(t, want.View, g.Scene().ViewMatrix())
	assert.Equal(t, want.Projection, g.Scene().ProjectionMatrix())

	g.SetCamera(Everything)
	assert.True(t, g.Player().Shape.Visible())
}

func TestMoveUploadsOnlyThePlayer(t *testing.T) {
	g := newTestGame(t)
	g.SetCamera(TopDown)
	g.backend.forget()

	g.Move(Up)
	require.Len(t, g.backend.vertUps, 1)
	assert.Equal(t, 0, g.backend.vertUps[0].offset)
	assert.Equal(t, g.Player().Shape.Len()*FloatsPerVertex, g.backend.vertUps[0].floats)
	assert.Len(t, g.backend.draws, len(g.Scene().Shapes())-1, "the eaten pellet is not drawn")
}

func TestBoardCleared(t *testing.T) {
	g := newTestGame(t)
	cleared := 0
	g.Events().Subscribe(EventBoardCleared, func(Event) { cleared++ })

	next := GameLocation{X: 0, Y: 1}
	for _, f := range g.Food() {
		if !f.Location.Equals(next) {
			f.Shape.SetVisible(false)
		}
	}
	require.Equal(t, 1, g.RemainingFood())

	g.Move(Down) // turning eats nothing
	g.Move(Down)
	assert.Zero(t, cleared)

	g.Move(Up)
	assert.Equal(t, next, g.Location())
	assert.Equal(t, 1, cleared)
	assert.Zero(t, g.RemainingFood())
}

func TestSetAspect(t *testing.T) {
	g := newTestGame(t)
	g.SetAspect(2)
	assert.Equal(t, float32(2), g.Aspect())
	want := CameraFor(Perspective, GameLocation{}, Up, g.Board().Bounds(), 2)
	assert.Equal(t, want.Projection, g.Scene().ProjectionMatrix())

	g.SetAspect(0)
	assert.Equal(t, float32(2), g.Aspect())
}
