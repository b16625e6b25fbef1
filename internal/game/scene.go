package game

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zyedidia/generic/mapset"
)

var ErrSceneFull = errors.New("scene buffers full")

// Scene is an append-only list of shapes sharing two backing buffers
// (positions, texture coordinates). Each shape owns the fixed range
// [StartIndex, StartIndex+Len) in both.
type Scene struct {
	backend  Backend
	capacity int

	shapes      []*Shape
	vertexCount int
	dirty       mapset.Set[*Shape]

	view       mgl32.Mat4
	projection mgl32.Mat4

	// Reusable upload buffers.
	vertBuf []float32
	texBuf  []float32
}

// NewScene creates a scene over backend buffers holding capacity vertices.
func NewScene(backend Backend, capacity int) *Scene {
	s := &Scene{
		backend:  backend,
		capacity: capacity,
		dirty:    mapset.New[*Shape](),
	}
	s.SetViewMatrix(mgl32.Ident4())
	s.SetProjectionMatrix(mgl32.Ident4())
	return s
}

// AddShapes appends shapes in order. Nothing is added if they do not fit.
func (s *Scene) AddShapes(shapes ...*Shape) error {
	need := 0
	for _, sh := range shapes {
		if sh.scene != nil {
			return fmt.Errorf("add shape: already in a scene at offset %d", sh.startIndex)
		}
		need += sh.Len()
	}
	if s.vertexCount+need > s.capacity {
		return fmt.Errorf("add %d vertices to %d of %d: %w", need, s.vertexCount, s.capacity, ErrSceneFull)
	}

	for _, sh := range shapes {
		sh.startIndex = s.vertexCount
		sh.scene = s
		s.vertexCount += sh.Len()
		s.shapes = append(s.shapes, sh)
		s.dirty.Put(sh)
	}
	return nil
}

// Transform applies m to every shape in the scene.
func (s *Scene) Transform(m mgl32.Mat4) {
	for _, sh := range s.shapes {
		sh.Transform(m)
	}
}

// Render clears the frame and draws every visible shape in insertion
// order, uploading the sub-range of shapes that changed since their last
// upload. Invisible shapes are neither uploaded nor drawn.
func (s *Scene) Render() {
	s.backend.Clear()
	for _, sh := range s.shapes {
		if !sh.visible {
			continue
		}
		if s.dirty.Has(sh) {
			s.upload(sh)
		}
		s.backend.BindTexture(sh.Texture)
		s.backend.DrawTriangles(sh.startIndex, sh.Len())
	}
}

func (s *Scene) upload(sh *Shape) {
	s.vertBuf = sh.flattenVertices(s.vertBuf)
	s.backend.UploadVertices(sh.startIndex, s.vertBuf)
	s.texBuf = sh.flattenTexCoords(s.texBuf)
	s.backend.UploadTexCoords(sh.startIndex, s.texBuf)
	s.dirty.Remove(sh)
}

func (s *Scene) markDirty(sh *Shape) { s.dirty.Put(sh) }

// IsDirty reports whether sh changed since it was last uploaded.
func (s *Scene) IsDirty(sh *Shape) bool { return s.dirty.Has(sh) }

func (s *Scene) DirtyCount() int { return s.dirty.Size() }

func (s *Scene) SetViewMatrix(m mgl32.Mat4) {
	s.view = m
	s.backend.SetViewMatrix(m)
}

func (s *Scene) SetProjectionMatrix(m mgl32.Mat4) {
	s.projection = m
	s.backend.SetProjectionMatrix(m)
}

func (s *Scene) ViewMatrix() mgl32.Mat4       { return s.view }
func (s *Scene) ProjectionMatrix() mgl32.Mat4 { return s.projection }
func (s *Scene) Shapes() []*Shape             { return s.shapes }
func (s *Scene) VertexCount() int             { return s.vertexCount }
func (s *Scene) Capacity() int                { return s.capacity }
