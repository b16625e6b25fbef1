package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(DefaultLayout(), testTextures)
	require.NoError(t, err)
	return b
}

func TestDefaultBoard(t *testing.T) {
	b := newTestBoard(t)

	assert.Equal(t, BoundingBox{Upper: GameLocation{X: 25, Y: 28}}, b.Bounds())
	assert.Len(t, b.Obstacles(), 36)
	assert.Len(t, b.Teleporters(), 2)
	// floor + 2 teleporter pads + 6 walls + obstacles
	assert.Len(t, b.Shapes(), 1+2+6+36)

	for i, o := range b.Obstacles() {
		assert.Equal(t, KindObstacle, o.Kind)
		assert.Equal(t, o.Box.Lower, o.Location)
		assert.Same(t, o.Shape, b.Shapes()[9+i], "obstacles follow the static shapes")
		assert.Equal(t, testTextures.Brick, o.Shape.Texture)
	}
}

func TestBoardObstacles(t *testing.T) {
	b := newTestBoard(t)

	// {1, 1, 10, 2} covers x 1..10, y 1..2.
	assert.True(t, b.HasObstacleAtLocation(GameLocation{X: 1, Y: 1}))
	assert.True(t, b.HasObstacleAtLocation(GameLocation{X: 10, Y: 2}))
	assert.False(t, b.HasObstacleAtLocation(GameLocation{X: 11, Y: 1}))
	assert.False(t, b.HasObstacleAtLocation(GameLocation{X: 0, Y: 0}))

	assert.True(t, b.IsValidLocation(GameLocation{X: 0, Y: 0}))
	assert.True(t, b.IsValidLocation(GameLocation{X: 0, Y: 1}))
	assert.False(t, b.IsValidLocation(GameLocation{X: 1, Y: 1}), "obstructed")
	assert.False(t, b.IsValidLocation(GameLocation{X: -1, Y: 0}), "outside bounds")
	assert.False(t, b.IsValidLocation(GameLocation{X: 0, Y: 29}), "outside bounds")
	assert.False(t, b.IsValidLocation(GameLocation{X: -1, Y: 15}), "teleporter trigger is not walkable")
}

func TestBoardTeleporters(t *testing.T) {
	b := newTestBoard(t)

	tele, ok := b.Teleporter(GameLocation{X: 26, Y: 15})
	require.True(t, ok)
	assert.Equal(t, GameLocation{X: 0, Y: 15}, tele.End)
	assert.Equal(t, KindTeleporter, tele.Kind)

	tele, ok = b.Teleporter(GameLocation{X: -1, Y: 15})
	require.True(t, ok)
	assert.Equal(t, GameLocation{X: 25, Y: 15}, tele.End)

	_, ok = b.Teleporter(GameLocation{X: 0, Y: 15})
	assert.False(t, ok)

	for _, tp := range b.Teleporters() {
		assert.False(t, b.Bounds().Contains(tp.Location))
		assert.True(t, b.IsValidLocation(tp.End))
	}
}

func TestBoardRejectsBadTeleporter(t *testing.T) {
	layout := DefaultLayout()
	layout.Teleporters = append(layout.Teleporters, TeleporterSpec{
		Trigger: GameLocation{X: 26, Y: 0},
		End:     GameLocation{X: 1, Y: 1}, // obstacle
	})
	_, err := NewBoard(layout, testTextures)
	assert.ErrorIs(t, err, ErrInvalidLayout)

	layout = DefaultLayout()
	layout.Teleporters[0].Trigger = GameLocation{X: 3, Y: 0}
	_, err = NewBoard(layout, testTextures)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestWallsLeaveTunnel(t *testing.T) {
	b := newTestBoard(t)
	// Shapes 3..8 are walls, in pre-scene model space (1 unit per cell).
	for _, w := range b.Shapes()[3:9] {
		lo, hi := w.Bounds()
		if lo.X() >= 0 && hi.X() <= 26 && lo.X() <= 0 && hi.X() >= 26 {
			continue // top or bottom slab
		}
		assert.False(t, lo.Y() <= 15 && hi.Y() >= 16, "side wall %v..%v covers the tunnel row", lo, hi)
	}
}
