//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pac3d/internal/game"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionReset
	ActionCamera
	ActionQuit
)

// Binding maps one key to an action. Turn and View are only meaningful
// for ActionMove and ActionCamera respectively.
type Binding struct {
	Key    glfw.Key
	Action Action
	Turn   game.Direction
	View   game.CameraView
}

// DefaultBindings: arrows move relative to the player, Escape resets,
// 1/2/3 pick the camera and Q quits.
var DefaultBindings = []Binding{
	{Key: glfw.KeyUp, Action: ActionMove, Turn: game.Up},
	{Key: glfw.KeyLeft, Action: ActionMove, Turn: game.Left},
	{Key: glfw.KeyRight, Action: ActionMove, Turn: game.Right},
	{Key: glfw.KeyDown, Action: ActionMove, Turn: game.Down},
	{Key: glfw.KeyEscape, Action: ActionReset},
	{Key: glfw.Key1, Action: ActionCamera, View: game.Perspective},
	{Key: glfw.Key2, Action: ActionCamera, View: game.TopDown},
	{Key: glfw.Key3, Action: ActionCamera, View: game.Everything},
	{Key: glfw.KeyQ, Action: ActionQuit},
}

type Input struct {
	prevKeys map[glfw.Key]bool
	bindings []Binding
}

func NewInput(bindings []Binding) *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
		bindings: bindings,
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Pressed returns the bindings whose keys went down since the last call,
// in binding order.
func (in *Input) Pressed(window *glfw.Window) []Binding {
	var out []Binding
	for _, b := range in.bindings {
		if in.JustPressed(window, b.Key) {
			out = append(out, b)
		}
	}
	return out
}
