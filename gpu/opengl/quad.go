// This file is part of Postfx.
//
// Postfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Postfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Postfx.  If not, see <https://www.gnu.org/licenses/>.

package opengl

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gpu"
)

// triangle strip covering the viewport. two position and two uv components
// per vertex.
var quadVertices = []float32{
	-1.0, -1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 1.0,
}

type quad struct {
	vao uint32
	vbo uint32
}

// NewQuad implements the gpu.Context interface.
func (ctx *Context) NewQuad() (gpu.Quad, error) {
	q := &quad{}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.EnableVertexAttribArray(attribVert)
	gl.VertexAttribPointerWithOffset(attribVert, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribUV)
	gl.VertexAttribPointerWithOffset(attribUV, 2, gl.FLOAT, false, stride, 2*4)

	gl.BindVertexArray(0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		q.Release()
		return nil, curated.Errorf(gpu.AllocationFailed, glError(e))
	}

	return q, nil
}

// Render implements the gpu.Quad interface. The program must have been
// created by the same context.
func (q *quad) Render(prg gpu.Program) {
	gl.UseProgram(prg.(*program).handle)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func (q *quad) Release() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
}
