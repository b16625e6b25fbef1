package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allDirections = []Direction{Down, Left, Right, Up}

func TestDirectionTables(t *testing.T) {
	tests := []struct {
		d                   Direction
		opposite, lft, rght Direction
	}{
		{Down, Up, Right, Left},
		{Left, Right, Down, Up},
		{Right, Left, Up, Down},
		{Up, Down, Left, Right},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.opposite, Opposite(tt.d))
			assert.Equal(t, tt.lft, RotateLeft(tt.d))
			assert.Equal(t, tt.rght, RotateRight(tt.d))
		})
	}
}

func TestDirectionAlgebra(t *testing.T) {
	for _, d := range allDirections {
		assert.Equal(t, d, Opposite(Opposite(d)), "opposite twice from %v", d)
		assert.Equal(t, d, RotateLeft(RotateRight(d)), "left after right from %v", d)
		assert.Equal(t, d, RotateRight(RotateLeft(d)), "right after left from %v", d)
		assert.Equal(t, d, RotateLeft(RotateLeft(RotateLeft(RotateLeft(d)))), "four left turns from %v", d)
		assert.Equal(t, Opposite(d), RotateLeft(RotateLeft(d)), "two left turns from %v", d)
	}
}

func TestResolveDirectionInput(t *testing.T) {
	for _, d := range allDirections {
		assert.Equal(t, d, ResolveDirectionInput(d, Up))
		assert.Equal(t, Opposite(d), ResolveDirectionInput(d, Down))
		assert.Equal(t, RotateLeft(d), ResolveDirectionInput(d, Left))
		assert.Equal(t, RotateRight(d), ResolveDirectionInput(d, Right))
	}

	// Forward is the identity along any sequence of turns.
	facing := Up
	for _, turn := range []Direction{Left, Left, Right, Down, Left, Right, Right} {
		facing = ResolveDirectionInput(facing, turn)
		assert.Equal(t, facing, ResolveDirectionInput(facing, Up))
	}
}

func TestDirectionStep(t *testing.T) {
	origin := GameLocation{X: 3, Y: 7}
	assert.Equal(t, GameLocation{X: 3, Y: 8}, Up.Step(origin))
	assert.Equal(t, GameLocation{X: 3, Y: 6}, Down.Step(origin))
	assert.Equal(t, GameLocation{X: 2, Y: 7}, Left.Step(origin))
	assert.Equal(t, GameLocation{X: 4, Y: 7}, Right.Step(origin))
}

func TestBoundingBoxContains(t *testing.T) {
	box := BoundingBox{Lower: GameLocation{X: 1, Y: 2}, Upper: GameLocation{X: 4, Y: 3}}

	assert.True(t, box.Contains(GameLocation{X: 1, Y: 2}))
	assert.True(t, box.Contains(GameLocation{X: 4, Y: 3}))
	assert.True(t, box.Contains(GameLocation{X: 2, Y: 3}))
	assert.False(t, box.Contains(GameLocation{X: 0, Y: 2}))
	assert.False(t, box.Contains(GameLocation{X: 5, Y: 3}))
	assert.False(t, box.Contains(GameLocation{X: 2, Y: 4}))
	assert.Equal(t, 4, box.Width())
	assert.Equal(t, 2, box.Height())
}

func TestRectBox(t *testing.T) {
	box := Rect{X: 6, Y: 16, W: 2, H: 8}.Box()
	assert.Equal(t, GameLocation{X: 6, Y: 16}, box.Lower)
	assert.Equal(t, GameLocation{X: 7, Y: 23}, box.Upper)
}
