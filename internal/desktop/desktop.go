//go:build !android

// Package desktop runs the game in a glfw window.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"pac3d/internal/game"
	"pac3d/internal/glrender"
	"pac3d/internal/sound"
)

type Options struct {
	Width, Height int
	Title         string
	Mute          bool
	Volume        float64
}

func DefaultOptions() Options {
	return Options{
		Width:  game.WindowWidth,
		Height: game.WindowHeight,
		Title:  game.WindowTitle,
		Volume: 0.5,
	}
}

var scoreStyle = color.Style{color.FgYellow, color.OpBold}

// Run opens the window and blocks until it is closed. The loop sleeps in
// glfw.WaitEvents; nothing is redrawn unless input changed the scene.
func Run(opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(opts.Width, opts.Height, opts.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.WithField("version", gl.GoStr(gl.GetString(gl.VERSION))).Info("OpenGL ready")

	rend, err := glrender.NewRenderer(game.MaxVertices)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	tex, err := rend.LoadTextures()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	rend.Viewport(fbW, fbH)

	onScore := func(score int) {
		window.SetTitle(fmt.Sprintf("%s | %s", opts.Title, gotext.Get("Score: %d", score)))
		fmt.Println(scoreStyle.Sprint(gotext.Get("Score: %d", score)))
	}
	onScore(0)

	// NewDefaultGame renders the first frame; swap it once the loop starts.
	dirty := true
	g, err := game.NewDefaultGame(rend, tex, aspectOf(fbW, fbH), onScore)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	g.Events().Subscribe(game.EventRendered, func(game.Event) { dirty = true })
	g.Events().Subscribe(game.EventBoardCleared, func(e game.Event) {
		fmt.Println(scoreStyle.Sprint(gotext.Get("Board cleared with %d points!", e.Score)))
	})

	if snd, err := sound.Init(opts.Volume); err != nil {
		log.WithError(err).Warn("audio init failed, continuing without sound")
	} else {
		snd.SetMuted(opts.Mute)
		snd.Attach(g.Events())
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if w <= 0 || h <= 0 {
			return
		}
		rend.Viewport(w, h)
		g.SetAspect(aspectOf(w, h))
		// SetAspect skips unchanged ratios; the new viewport still needs a frame.
		if !dirty {
			g.Render()
		}
	})

	input := NewInput(DefaultBindings)
	for !window.ShouldClose() {
		if dirty {
			window.SwapBuffers()
			dirty = false
		}
		glfw.WaitEvents()

		for _, b := range input.Pressed(window) {
			switch b.Action {
			case ActionMove:
				g.Move(b.Turn)
			case ActionReset:
				g.Reset()
			case ActionCamera:
				g.SetCamera(b.View)
			case ActionQuit:
				window.SetShouldClose(true)
			}
		}
	}
	log.WithField("score", g.Score()).Info("window closed")
	return nil
}

func aspectOf(w, h int) float32 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}
