package hellocanvas

import (
	"fmt"

	"gl-demos/internal/graphics"
	"gl-demos/internal/graphics/renderer"
	"gl-demos/internal/graphics/shaders"
	"gl-demos/internal/input"
	"gl-demos/internal/points"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// HelloCanvas draws a point wherever the window is clicked
type HelloCanvas struct {
	shader   *graphics.Shader
	vao, vbo uint32
	canvas   points.Canvas
	uploaded int
}

func NewHelloCanvas() *HelloCanvas {
	return &HelloCanvas{}
}

func (h *HelloCanvas) Init() error {
	var err error
	h.shader, err = graphics.NewShaderFromSource(shaders.CanvasVertex, shaders.CanvasFragment)
	if err != nil {
		return fmt.Errorf("canvas shader: %w", err)
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	// Later clicks draw over earlier ones
	gl.Disable(gl.DEPTH_TEST)

	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	stride := int32(points.FloatsPerPoint * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// HandleClick adds a point at window position (x, y)
func (h *HelloCanvas) HandleClick(x, y float64, width, height int) bool {
	_, ok := h.canvas.Click(x, y, width, height)
	return ok
}

func (h *HelloCanvas) Render(ctx renderer.RenderContext) {
	n := h.canvas.Len()
	if n == 0 {
		return
	}
	if n != h.uploaded {
		vertices := h.canvas.Vertices()
		gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		h.uploaded = n
	}

	h.shader.Use()
	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(n))
	gl.BindVertexArray(0)
}

// HandleAction ignores keys; the canvas only reacts to clicks
func (h *HelloCanvas) HandleAction(a input.Action) bool {
	return false
}

func (h *HelloCanvas) Animated() bool {
	return false
}

func (h *HelloCanvas) SetViewport(width, height int) {}

func (h *HelloCanvas) Dispose() {
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
		gl.DeleteBuffers(1, &h.vbo)
		h.vao = 0
	}
	if h.shader != nil {
		h.shader.Delete()
	}
}
