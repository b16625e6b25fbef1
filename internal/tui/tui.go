// Package tui plays the game in a terminal, drawn top-down with coloured
// glyphs. The core runs against a discarding backend.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"pac3d/internal/game"
	"pac3d/internal/sound"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"

	DefaultWidth  = 80
	DefaultHeight = 24
)

type Options struct {
	Mute   bool
	Volume float64
}

// Run takes over the terminal until the player quits or stdin closes.
func Run(opts Options) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("tui: stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("tui: raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil {
			log.WithError(err).Error("restore terminal")
		}
	}()

	out := bufio.NewWriter(os.Stdout)
	fmt.Fprint(out, hideCursor)
	defer func() {
		fmt.Fprint(out, showCursor+"\r\n")
		out.Flush()
	}()

	g, err := game.NewDefaultGame(game.DiscardBackend{}, game.Textures{}, 1, func(score int) {
		log.WithField("score", score).Debug("score")
	})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	if !opts.Mute {
		if snd, err := sound.Init(opts.Volume); err != nil {
			log.WithError(err).Warn("audio init failed, continuing without sound")
		} else {
			snd.Attach(g.Events())
		}
	}

	g.Events().Subscribe(game.EventRendered, func(game.Event) { present(out, g) })
	present(out, g)

	keys := make(chan []Key)
	go readKeys(os.Stdin, keys)

	for ks := range keys {
		for _, k := range ks {
			switch k {
			case KeyQuit:
				log.WithField("score", g.Score()).Info("quit")
				return nil
			case KeyUp:
				g.Move(game.Up)
			case KeyDown:
				g.Move(game.Down)
			case KeyLeft:
				g.Move(game.Left)
			case KeyRight:
				g.Move(game.Right)
			case KeyReset:
				g.Reset()
			case KeyPerspective:
				g.SetCamera(game.Perspective)
			case KeyTopDown:
				g.SetCamera(game.TopDown)
			case KeyEverything:
				g.SetCamera(game.Everything)
			}
		}
	}
	return nil
}

// readKeys forwards decoded key presses until r fails, then closes keys.
func readKeys(r io.Reader, keys chan<- []Key) {
	defer close(keys)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if ks := ParseKeys(buf[:n]); len(ks) > 0 {
				keys <- ks
			}
		}
		if err != nil {
			if err != io.EOF {
				log.WithError(err).Debug("stdin closed")
			}
			return
		}
	}
}

func present(out *bufio.Writer, g *game.Game) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = DefaultWidth, DefaultHeight
	}
	lines := Draw(g)
	cols, _ := BoardSize(g.Board())

	fmt.Fprint(out, clearScreen)
	if width < cols || height < len(lines) {
		fmt.Fprint(out, TooSmall(cols, len(lines)))
	} else {
		// Raw mode needs explicit carriage returns.
		fmt.Fprint(out, strings.Join(lines, "\r\n"))
	}
	if err := out.Flush(); err != nil {
		log.WithError(err).Debug("flush")
	}
}
