package game

import "github.com/go-gl/mathgl/mgl32"

// Matrices compose as a.Mul4(b): b is applied first.

func Translate(x, y, z float32) mgl32.Mat4 { return mgl32.Translate3D(x, y, z) }

func Scale(x, y, z float32) mgl32.Mat4 { return mgl32.Scale3D(x, y, z) }

// LookAt builds a view matrix. Coincident eye and target give the identity.
func LookAt(eye, at, up mgl32.Vec3) mgl32.Mat4 {
	if eye == at {
		return mgl32.Ident4()
	}
	return mgl32.LookAtV(eye, at, up)
}

func Ortho(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	return mgl32.Ortho(left, right, bottom, top, near, far)
}

// PerspectiveMatrix takes the vertical field of view in degrees.
func PerspectiveMatrix(fovy, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovy), aspect, near, far)
}

// MulPoint transforms a homogeneous point, keeping w = 1.
func MulPoint(m mgl32.Mat4, v mgl32.Vec4) mgl32.Vec4 {
	r := m.Mul4x1(v)
	r[3] = 1
	return r
}
