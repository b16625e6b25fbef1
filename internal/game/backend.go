package game

import "github.com/go-gl/mathgl/mgl32"

// Texture is an opaque handle issued by the backend.
type Texture uint32

// Textures holds the handles used to build the board, player and food.
type Textures struct {
	Wood   Texture
	Brick  Texture
	Black  Texture
	Pacman Texture
	Pellet Texture
}

// Backend is the drawing surface a Scene renders through. Buffers are
// allocated by the backend before the scene is built; offsets and counts
// are in vertices.
type Backend interface {
	Clear()
	UploadVertices(offset int, data []float32)
	UploadTexCoords(offset int, data []float32)
	BindTexture(tex Texture)
	DrawTriangles(first, count int)
	SetViewMatrix(m mgl32.Mat4)
	SetProjectionMatrix(m mgl32.Mat4)
}

// DiscardBackend accepts every call and draws nothing. Frontends that
// present the game without GL drive the core through it.
type DiscardBackend struct{}

func (DiscardBackend) Clear()                         {}
func (DiscardBackend) UploadVertices(int, []float32)  {}
func (DiscardBackend) UploadTexCoords(int, []float32) {}
func (DiscardBackend) BindTexture(Texture)            {}
func (DiscardBackend) DrawTriangles(int, int)         {}
func (DiscardBackend) SetViewMatrix(mgl32.Mat4)       {}
func (DiscardBackend) SetProjectionMatrix(mgl32.Mat4) {}
