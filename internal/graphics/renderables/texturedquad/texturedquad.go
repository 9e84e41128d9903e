package texturedquad

import (
	"fmt"
	"image"

	"gl-demos/internal/graphics"
	"gl-demos/internal/graphics/renderer"
	"gl-demos/internal/graphics/shaders"
	"gl-demos/internal/imaging"
	"gl-demos/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// x, y, s, t as a triangle strip
var verticesTexCoords = []float32{
	-0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.0, 0.0,
	0.5, 0.5, 1.0, 1.0,
	0.5, -0.5, 1.0, 0.0,
}

const generatedSize = 256

// TexturedQuad draws a quad whose color is the product of two textures
type TexturedQuad struct {
	skyPath, maskPath string

	shader      *graphics.Shader
	vao, vbo    uint32
	vertexCount int32
	textures    [2]uint32
}

// NewTexturedQuad creates the demo. Empty paths fall back to generated
// sky and circle images.
func NewTexturedQuad(skyPath, maskPath string) *TexturedQuad {
	return &TexturedQuad{skyPath: skyPath, maskPath: maskPath}
}

func (q *TexturedQuad) Init() error {
	var err error
	q.shader, err = graphics.NewShaderFromSource(shaders.TexturedQuadVertex, shaders.TexturedQuadFragment)
	if err != nil {
		return fmt.Errorf("textured quad shader: %w", err)
	}
	if err := q.shader.RequireUniforms("u_Sampler0", "u_Sampler1"); err != nil {
		q.shader.Delete()
		return fmt.Errorf("textured quad shader: %w", err)
	}

	q.textures[0], err = graphics.GetTexture(textureKey(q.skyPath, "generated:sky"), imageSource(q.skyPath, imaging.Sky))
	if err != nil {
		q.shader.Delete()
		return fmt.Errorf("textured quad: texture 0: %w", err)
	}
	q.textures[1], err = graphics.GetTexture(textureKey(q.maskPath, "generated:circle"), imageSource(q.maskPath, imaging.Circle))
	if err != nil {
		q.shader.Delete()
		graphics.ReleaseTextures()
		return fmt.Errorf("textured quad: texture 1: %w", err)
	}

	q.shader.Use()
	q.shader.SetInt("u_Sampler0", 0)
	q.shader.SetInt("u_Sampler1", 1)

	q.vertexCount = graphics.CreateInterleavedVAO(&q.vao, &q.vbo, verticesTexCoords, 2, 2)
	return nil
}

func textureKey(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}

func imageSource(path string, generate func(size int) *image.RGBA) func() (image.Image, error) {
	if path == "" {
		return func() (image.Image, error) { return generate(generatedSize), nil }
	}
	return func() (image.Image, error) { return imaging.Load(path) }
}

func (q *TexturedQuad) Render(ctx renderer.RenderContext) {
	q.shader.Use()
	graphics.BindTexture(0, q.textures[0])
	graphics.BindTexture(1, q.textures[1])

	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, q.vertexCount)
	gl.BindVertexArray(0)
}

// HandleAction ignores input; the quad is static
func (q *TexturedQuad) HandleAction(a input.Action) bool {
	return false
}

func (q *TexturedQuad) Animated() bool {
	return false
}

func (q *TexturedQuad) SetViewport(width, height int) {}

func (q *TexturedQuad) Dispose() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		gl.DeleteBuffers(1, &q.vbo)
	}
	graphics.ReleaseTextures()
	if q.shader != nil {
		q.shader.Delete()
	}
}
