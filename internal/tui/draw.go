package tui

import (
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"pac3d/internal/game"
)

// Glyphs, two columns per cell so the board keeps a square-ish aspect.
const (
	glyphWall     = "██"
	glyphObstacle = "▓▓"
	glyphFood     = " ·"
	glyphEmpty    = "  "
	glyphPortal   = "<>"
)

var (
	colorWall     = color.Style{color.FgYellow}
	colorObstacle = color.Style{color.FgRed}
	colorFood     = color.Style{color.FgWhite, color.OpBold}
	colorPortal   = color.Style{color.FgCyan, color.OpBold}
	colorPlayer   = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
	colorStatus   = color.Style{color.FgGreen, color.OpBold}
	colorSubtle   = color.Style{color.FgGray}
)

var playerGlyphs = map[game.Direction]string{
	game.Up:    "/\\",
	game.Down:  "\\/",
	game.Left:  "<(",
	game.Right: ")>",
}

// BoardSize returns the character cells needed to draw the board with
// its surrounding wall, excluding the status lines.
func BoardSize(b *game.Board) (cols, rows int) {
	bounds := b.Bounds()
	return (bounds.Width() + 2) * 2, bounds.Height() + 2
}

// Draw renders the board top-down, +y at the top, followed by the status
// and help lines. Lines carry no trailing newline.
func Draw(g *game.Game) []string {
	b := g.Board()
	bounds := b.Bounds()
	lines := make([]string, 0, bounds.Height()+4)

	for y := bounds.Upper.Y + 1; y >= bounds.Lower.Y-1; y-- {
		var sb strings.Builder
		for x := bounds.Lower.X - 1; x <= bounds.Upper.X+1; x++ {
			sb.WriteString(cell(g, game.GameLocation{X: x, Y: y}))
		}
		lines = append(lines, sb.String())
	}

	lines = append(lines,
		colorStatus.Sprint(gotext.Get("Score: %d", g.Score()))+"  "+
			gotext.Get("Food left: %d", g.RemainingFood())+"  "+
			gotext.Get("Camera: %s", g.Camera()),
		colorSubtle.Sprint(gotext.Get("arrows: move/turn  esc: reset  1/2/3: camera  q: quit")),
	)
	return lines
}

func cell(g *game.Game, loc game.GameLocation) string {
	b := g.Board()
	switch {
	case loc.Equals(g.Location()):
		return colorPlayer.Sprint(playerGlyphs[g.Facing()])
	case !b.Bounds().Contains(loc):
		if _, ok := b.Teleporter(loc); ok {
			return colorPortal.Sprint(glyphPortal)
		}
		return colorWall.Sprint(glyphWall)
	case b.HasObstacleAtLocation(loc):
		return colorObstacle.Sprint(glyphObstacle)
	}
	if f, ok := g.FoodAt(loc); ok && !f.Eaten() {
		return colorFood.Sprint(glyphFood)
	}
	return glyphEmpty
}

// TooSmall is shown instead of the board when the terminal cannot fit it.
func TooSmall(needCols, needRows int) string {
	return gotext.Get("Terminal too small, need %dx%d", needCols, needRows)
}
