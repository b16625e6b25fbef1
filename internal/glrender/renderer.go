//go:build !android

// Package glrender draws a game.Scene with OpenGL 4.1 core.
package glrender

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"pac3d/internal/game"
)

const (
	bytesPerFloat  = 4
	vertexStride   = game.FloatsPerVertex * bytesPerFloat
	texCoordStride = game.FloatsPerTexCoord * bytesPerFloat
	defaultTexUnit = 0
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer implements game.Backend. Both vertex buffers are allocated once
// for capacity vertices; uploads only ever touch a sub-range.
type Renderer struct {
	prog     uint32
	vao      uint32
	vertVBO  uint32
	texVBO   uint32
	capacity int

	uMVMatrix int32
	uPMatrix  int32
	uTex      int32

	textures []uint32
}

var _ game.Backend = (*Renderer)(nil)

// NewRenderer needs a current GL context.
func NewRenderer(capacity int) (*Renderer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("renderer: invalid capacity %d", capacity)
	}
	prog, err := linkProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}

	r := &Renderer{prog: prog, capacity: capacity}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// vPosition (vec4)
	gl.GenBuffers(1, &r.vertVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertVBO)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*vertexStride, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointer(attrPosition, game.FloatsPerVertex, gl.FLOAT, false, vertexStride, glOffset(0))

	// vTexCoord (vec2)
	gl.GenBuffers(1, &r.texVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.texVBO)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*texCoordStride, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(attrTexCoord)
	gl.VertexAttribPointer(attrTexCoord, game.FloatsPerTexCoord, gl.FLOAT, false, texCoordStride, glOffset(0))

	gl.UseProgram(prog)
	r.uMVMatrix = gl.GetUniformLocation(prog, gl.Str("uMVMatrix\x00"))
	r.uPMatrix = gl.GetUniformLocation(prog, gl.Str("uPMatrix\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, defaultTexUnit)

	ident := mgl32.Ident4()
	gl.UniformMatrix4fv(r.uMVMatrix, 1, false, &ident[0])
	gl.UniformMatrix4fv(r.uPMatrix, 1, false, &ident[0])

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(1, 1, 1, 1)
	gl.ActiveTexture(gl.TEXTURE0 + defaultTexUnit)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.vertVBO, r.texVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
}

// Capacity is the vertex count both buffers were sized for.
func (r *Renderer) Capacity() int { return r.capacity }

// Viewport resizes the GL viewport to the framebuffer.
func (r *Renderer) Viewport(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
}

func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
}

func (r *Renderer) UploadVertices(offset int, data []float32) {
	r.upload(r.vertVBO, offset*vertexStride, data)
}

func (r *Renderer) UploadTexCoords(offset int, data []float32) {
	r.upload(r.texVBO, offset*texCoordStride, data)
}

func (r *Renderer) upload(vbo uint32, byteOffset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, byteOffset, len(data)*bytesPerFloat, gl.Ptr(&data[0]))
}

func (r *Renderer) BindTexture(tex game.Texture) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (r *Renderer) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (r *Renderer) SetViewMatrix(m mgl32.Mat4) {
	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uMVMatrix, 1, false, &m[0])
}

func (r *Renderer) SetProjectionMatrix(m mgl32.Mat4) {
	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uPMatrix, 1, false, &m[0])
}
