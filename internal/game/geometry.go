package game

import "github.com/go-gl/mathgl/mgl32"

// Unit cube corners; faces index into this table.
var cubeCorners = [8]mgl32.Vec4{
	{0, 0, 1, 1},
	{0, 1, 1, 1},
	{1, 1, 1, 1},
	{1, 0, 1, 1},
	{0, 0, 0, 1},
	{0, 1, 0, 1},
	{1, 1, 0, 1},
	{1, 0, 0, 1},
}

var cubeFaces = [6][4]int{
	{1, 0, 3, 2},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
	{6, 5, 1, 2},
	{4, 5, 6, 7},
	{5, 4, 0, 1},
}

var quadTexCoords = [6]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {0, 0}, {1, 1}, {1, 0}}

var triangleTexCoords = [3]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}}

// MakeSquare builds the unit cube [0,1]^3 as 36 vertices.
func MakeSquare(tex Texture) *Shape {
	verts := make([]mgl32.Vec4, 0, 36)
	uvs := make([]mgl32.Vec2, 0, 36)
	for _, f := range cubeFaces {
		// Two triangles: a,b,c and a,c,d.
		for _, i := range [6]int{f[0], f[1], f[2], f[0], f[2], f[3]} {
			verts = append(verts, cubeCorners[i])
		}
		uvs = append(uvs, quadTexCoords[:]...)
	}
	return NewShape(verts, uvs, tex)
}

// MakeSphere builds a unit sphere by subdividing a tetrahedron
// SphereSubdivisions times.
func MakeSphere(tex Texture) *Shape {
	a := mgl32.Vec4{0, 0, -1, 1}
	b := mgl32.Vec4{0, 0.942809, 0.333333, 1}
	c := mgl32.Vec4{-0.816497, -0.471405, 0.333333, 1}
	d := mgl32.Vec4{0.816497, -0.471405, 0.333333, 1}

	n := 4 * pow4(SphereSubdivisions) * 3
	m := &meshBuilder{
		verts: make([]mgl32.Vec4, 0, n),
		uvs:   make([]mgl32.Vec2, 0, n),
	}
	m.divideTriangle(a, b, c, SphereSubdivisions)
	m.divideTriangle(d, c, b, SphereSubdivisions)
	m.divideTriangle(a, d, b, SphereSubdivisions)
	m.divideTriangle(a, c, d, SphereSubdivisions)
	return NewShape(m.verts, m.uvs, tex)
}

type meshBuilder struct {
	verts []mgl32.Vec4
	uvs   []mgl32.Vec2
}

func (m *meshBuilder) divideTriangle(a, b, c mgl32.Vec4, depth int) {
	if depth <= 0 {
		m.verts = append(m.verts, a, b, c)
		m.uvs = append(m.uvs, triangleTexCoords[:]...)
		return
	}
	ab := onSphere(a, b)
	ac := onSphere(a, c)
	bc := onSphere(b, c)

	m.divideTriangle(a, ab, ac, depth-1)
	m.divideTriangle(ab, b, bc, depth-1)
	m.divideTriangle(bc, c, ac, depth-1)
	m.divideTriangle(ab, bc, ac, depth-1)
}

// onSphere returns the midpoint of p and q pushed out to the unit sphere.
func onSphere(p, q mgl32.Vec4) mgl32.Vec4 {
	mid := p.Vec3().Add(q.Vec3()).Mul(0.5).Normalize()
	return mid.Vec4(1)
}

func pow4(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 4
	}
	return r
}
