package multipoint

import (
	"fmt"

	"gl-demos/internal/graphics"
	"gl-demos/internal/graphics/renderer"
	"gl-demos/internal/graphics/shaders"
	"gl-demos/internal/input"
	"gl-demos/internal/motion"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// x, y, r, g, b, point size
var verticesColors = []float32{
	0.0, 0.3, 1.0, 0.0, 0.0, 10.0,
	-0.3, -0.3, 0.0, 1.0, 0.0, 20.0,
	0.3, -0.3, 0.0, 0.0, 1.0, 30.0,
}

const defaultSpeed = 45.0

// MultiPoint spins a colored triangle around the origin
type MultiPoint struct {
	shader      *graphics.Shader
	vao, vbo    uint32
	vertexCount int32
	spinner     *motion.Spinner
}

func NewMultiPoint() *MultiPoint {
	return &MultiPoint{spinner: motion.NewSpinner(defaultSpeed)}
}

func (m *MultiPoint) Init() error {
	var err error
	m.shader, err = graphics.NewShaderFromSource(shaders.MultiPointVertex, shaders.MultiPointFragment)
	if err != nil {
		return fmt.Errorf("multipoint shader: %w", err)
	}
	if err := m.shader.RequireUniforms("u_ModelMatrix"); err != nil {
		m.shader.Delete()
		return fmt.Errorf("multipoint shader: %w", err)
	}

	// Point sizes come from the vertex shader
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	m.vertexCount = graphics.CreateInterleavedVAO(&m.vao, &m.vbo, verticesColors, 2, 3, 1)
	return nil
}

// ModelMatrix rotates around Z by angle degrees, then offsets along X
func ModelMatrix(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(angle)).Mul4(mgl32.Translate3D(0.35, 0, 0))
}

func (m *MultiPoint) Render(ctx renderer.RenderContext) {
	model := ModelMatrix(m.spinner.Advance(ctx.Now))

	m.shader.Use()
	m.shader.SetMatrix4("u_ModelMatrix", &model[0])
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// HandleAction speeds the rotation up or down
func (m *MultiPoint) HandleAction(a input.Action) bool {
	switch a {
	case input.ActionSpeedUp:
		m.spinner.Faster()
	case input.ActionSpeedDown:
		m.spinner.Slower()
	default:
		return false
	}
	return true
}

func (m *MultiPoint) Animated() bool {
	return true
}

func (m *MultiPoint) SetViewport(width, height int) {}

func (m *MultiPoint) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}
