package game

import "github.com/go-gl/mathgl/mgl32"

type upload struct {
	offset int
	floats int
}

type draw struct {
	tex   Texture
	first int
	count int
}

// recordingBackend captures every call a Scene makes.
type recordingBackend struct {
	clears     int
	vertUps    []upload
	texUps     []upload
	draws      []draw
	bound      Texture
	view       mgl32.Mat4
	projection mgl32.Mat4
}

func (r *recordingBackend) Clear() { r.clears++ }

func (r *recordingBackend) UploadVertices(offset int, data []float32) {
	r.vertUps = append(r.vertUps, upload{offset: offset, floats: len(data)})
}

func (r *recordingBackend) UploadTexCoords(offset int, data []float32) {
	r.texUps = append(r.texUps, upload{offset: offset, floats: len(data)})
}

func (r *recordingBackend) BindTexture(tex Texture) { r.bound = tex }

func (r *recordingBackend) DrawTriangles(first, count int) {
	r.draws = append(r.draws, draw{tex: r.bound, first: first, count: count})
}

func (r *recordingBackend) SetViewMatrix(m mgl32.Mat4)       { r.view = m }
func (r *recordingBackend) SetProjectionMatrix(m mgl32.Mat4) { r.projection = m }

// forget drops recorded uploads and draws.
func (r *recordingBackend) forget() {
	r.clears = 0
	r.vertUps = nil
	r.texUps = nil
	r.draws = nil
}

var testTextures = Textures{Wood: 1, Brick: 2, Black: 3, Pacman: 4, Pellet: 5}
