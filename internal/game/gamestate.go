package game

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ScoreListener receives the score after every change, including resets.
type ScoreListener func(score int)

// Game owns the player, the food and the score, and drives the scene.
// All methods run to completion on the caller's goroutine.
type Game struct {
	scene  *Scene
	board  *Board
	player *Player
	food   []*Food
	events *EventBus

	score    int
	camera   CameraView
	aspect   float32
	listener ScoreListener
}

// NewGame populates scene with the player, the board and the food, and
// renders the first frame from the perspective camera.
func NewGame(scene *Scene, board *Board, player *Player, tex Textures, aspect float32, listener ScoreListener) (*Game, error) {
	if listener == nil {
		listener = func(int) {}
	}
	g := &Game{
		scene:    scene,
		board:    board,
		player:   player,
		events:   NewEventBus(),
		camera:   Perspective,
		aspect:   aspect,
		listener: listener,
	}
	g.food = g.generateFood(tex.Pellet)

	shapes := make([]*Shape, 0, 1+len(board.Shapes())+len(g.food))
	shapes = append(shapes, player.Shape)
	shapes = append(shapes, board.Shapes()...)
	for _, f := range g.food {
		shapes = append(shapes, f.Shape)
	}
	if err := scene.AddShapes(shapes...); err != nil {
		return nil, fmt.Errorf("populate scene: %w", err)
	}
	scene.Transform(Translate(-5, -5, 0).Mul4(Scale(2, 2, 2)))

	log.WithFields(log.Fields{
		"shapes":   len(shapes),
		"vertices": scene.VertexCount(),
		"food":     len(g.food),
	}).Debug("game initialised")

	g.Render()
	return g, nil
}

// NewDefaultGame builds the standard maze with the player at (0,0) facing up.
func NewDefaultGame(backend Backend, tex Textures, aspect float32, listener ScoreListener) (*Game, error) {
	board, err := NewBoard(DefaultLayout(), tex)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	scene := NewScene(backend, MaxVertices)
	return NewGame(scene, board, NewDefaultPlayer(tex.Pacman), tex, aspect, listener)
}

// NewDefaultPlayer builds the player sphere at (0,0) facing up.
func NewDefaultPlayer(tex Texture) *Player {
	sphere := MakeSphere(tex)
	sphere.Transform(Scale(0.5, 0.5, 0.5).Mul4(Translate(1, 1, 3)))
	return NewPlayer(sphere, GameLocation{}, Up)
}

// Move applies one turn command. A changed facing turns the player in
// place. Otherwise the player steps one cell along its facing when that
// cell is walkable. A teleporter on the look-ahead cell, which is always
// computed from the facing held before this command, relocates the player
// unless it just turned.
func (g *Game) Move(turn Direction) {
	p := g.player
	next := ResolveDirectionInput(p.Facing, turn)
	ahead := p.Facing.Step(p.Location)
	tele, hasTele := g.board.Teleporter(ahead)

	turned := false
	if p.Facing != next {
		p.Facing = next
		turned = true
	} else if g.board.IsValidLocation(ahead) {
		p.SetLocation(ahead)
	}

	if hasTele && !turned {
		p.SetLocation(tele.End)
		log.WithFields(log.Fields{"from": tele.Location, "to": tele.End}).Debug("teleported")
		g.events.Emit(Event{Type: EventTeleported, Location: tele.End, Score: g.score, Camera: g.camera})
	}

	g.eatFoodIfExists(p.Location)
	g.Render()
}

// Reset puts the player back at the start, zeroes the score and restores
// all food. The board and scene buffers are kept.
func (g *Game) Reset() {
	g.player.Reset()
	g.score = 0
	g.listener(g.score)
	g.events.Emit(Event{Type: EventScoreChanged, Location: g.player.Location, Camera: g.camera})

	for _, f := range g.food {
		f.Shape.SetVisible(true)
	}

	log.WithField("location", g.player.Location).Debug("reset")
	g.events.Emit(Event{Type: EventReset, Location: g.player.Location, Camera: g.camera})
	g.Render()
}

// SetCamera switches the view; geometry is untouched.
func (g *Game) SetCamera(view CameraView) {
	g.camera = view
	log.WithField("camera", view).Debug("camera changed")
	g.events.Emit(Event{Type: EventCameraChanged, Location: g.player.Location, Score: g.score, Camera: view})
	g.Render()
}

// SetAspect updates the viewport aspect used by the perspective camera.
func (g *Game) SetAspect(aspect float32) {
	if aspect <= 0 || aspect == g.aspect {
		return
	}
	g.aspect = aspect
	g.Render()
}

// Render recomputes the camera and draws the scene.
func (g *Game) Render() {
	g.adjustCamera()
	g.scene.Render()
	g.events.Emit(Event{Type: EventRendered, Location: g.player.Location, Score: g.score, Camera: g.camera})
}

func (g *Game) adjustCamera() {
	cam := CameraFor(g.camera, g.player.Location, g.player.Facing, g.board.Bounds(), g.aspect)
	g.player.Shape.SetVisible(cam.PlayerVisible)
	g.scene.SetProjectionMatrix(cam.Projection)
	g.scene.SetViewMatrix(cam.View)
}

func (g *Game) eatFoodIfExists(loc GameLocation) {
	for _, f := range g.food {
		if !f.Location.Equals(loc) {
			continue
		}
		if f.Eaten() {
			return
		}
		f.Shape.SetVisible(false)
		g.score++
		g.listener(g.score)

		log.WithFields(log.Fields{"location": loc, "score": g.score}).Debug("food eaten")
		g.events.Emit(Event{Type: EventFoodEaten, Location: loc, Score: g.score, Camera: g.camera})
		g.events.Emit(Event{Type: EventScoreChanged, Location: loc, Score: g.score, Camera: g.camera})
		if g.RemainingFood() == 0 {
			log.WithField("score", g.score).Info("board cleared")
			g.events.Emit(Event{Type: EventBoardCleared, Location: loc, Score: g.score, Camera: g.camera})
		}
		return
	}
}

// generateFood places one pellet on every walkable cell except the
// player's start, column by column.
func (g *Game) generateFood(tex Texture) []*Food {
	bounds := g.board.Bounds()
	var food []*Food
	for x := bounds.Lower.X; x <= bounds.Upper.X; x++ {
		for y := bounds.Lower.Y; y <= bounds.Upper.Y; y++ {
			loc := GameLocation{X: x, Y: y}
			if g.board.HasObstacleAtLocation(loc) || g.player.Location.Equals(loc) {
				continue
			}
			sq := MakeSquare(tex)
			sq.Transform(Scale(FoodScale, FoodScale, FoodScale).Mul4(
				Translate(FoodBaseX+float32(x)*FoodSpacing, FoodBaseY+float32(y)*FoodSpacing, FoodBaseZ)))
			food = append(food, NewFood(sq, loc))
		}
	}
	return food
}

// RemainingFood counts uneaten food.
func (g *Game) RemainingFood() int {
	n := 0
	for _, f := range g.food {
		if !f.Eaten() {
			n++
		}
	}
	return n
}

// FoodAt returns the food item placed at loc.
func (g *Game) FoodAt(loc GameLocation) (*Food, bool) {
	for _, f := range g.food {
		if f.Location.Equals(loc) {
			return f, true
		}
	}
	return nil, false
}

func (g *Game) Events() *EventBus      { return g.events }
func (g *Game) Score() int             { return g.score }
func (g *Game) Camera() CameraView     { return g.camera }
func (g *Game) Location() GameLocation { return g.player.Location }
func (g *Game) Facing() Direction      { return g.player.Facing }
func (g *Game) Player() *Player        { return g.player }
func (g *Game) Board() *Board          { return g.board }
func (g *Game) Scene() *Scene          { return g.scene }
func (g *Game) Food() []*Food          { return g.food }
func (g *Game) Aspect() float32        { return g.aspect }
