package game

import "github.com/go-gl/mathgl/mgl32"

// Shape is a textured triangle list. Vertices and TexCoords always have
// the same length.
type Shape struct {
	Vertices  []mgl32.Vec4
	TexCoords []mgl32.Vec2
	Texture   Texture

	visible    bool
	startIndex int
	scene      *Scene
}

func NewShape(vertices []mgl32.Vec4, texCoords []mgl32.Vec2, tex Texture) *Shape {
	return &Shape{
		Vertices:   vertices,
		TexCoords:  texCoords,
		Texture:    tex,
		visible:    true,
		startIndex: -1,
	}
}

// Transform applies m to every vertex in place.
func (s *Shape) Transform(m mgl32.Mat4) {
	for i, v := range s.Vertices {
		s.Vertices[i] = MulPoint(m, v)
	}
	if s.scene != nil {
		s.scene.markDirty(s)
	}
}

func (s *Shape) SetVisible(v bool) { s.visible = v }
func (s *Shape) Visible() bool     { return s.visible }
func (s *Shape) Len() int          { return len(s.Vertices) }

// StartIndex is the shape's offset into the scene buffers, -1 until added.
func (s *Shape) StartIndex() int { return s.startIndex }

// Bounds returns the axis-aligned extent of the vertices.
func (s *Shape) Bounds() (lo, hi mgl32.Vec3) {
	if len(s.Vertices) == 0 {
		return
	}
	lo = s.Vertices[0].Vec3()
	hi = lo
	for _, v := range s.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < lo[k] {
				lo[k] = v[k]
			}
			if v[k] > hi[k] {
				hi[k] = v[k]
			}
		}
	}
	return
}

func (s *Shape) flattenVertices(buf []float32) []float32 {
	buf = buf[:0]
	for _, v := range s.Vertices {
		buf = append(buf, v[0], v[1], v[2], v[3])
	}
	return buf
}

func (s *Shape) flattenTexCoords(buf []float32) []float32 {
	buf = buf[:0]
	for _, t := range s.TexCoords {
		buf = append(buf, t[0], t[1])
	}
	return buf
}
