package litcube

import (
	"fmt"

	"gl-demos/internal/geometry"
	"gl-demos/internal/graphics"
	"gl-demos/internal/graphics/camera"
	"gl-demos/internal/graphics/renderer"
	"gl-demos/internal/graphics/shaders"
	"gl-demos/internal/input"
	"gl-demos/internal/motion"
	"gl-demos/internal/robot"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects the lighting model
type Mode int

const (
	// Directional lights a static cube per vertex from a fixed direction
	Directional Mode = iota
	// Point lights a spinning cube per pixel from a point light
	Point
)

var (
	cubeColor    = mgl32.Vec3{1, 0, 0}
	lightColor   = mgl32.Vec3{1, 1, 1}
	ambientLight = mgl32.Vec3{0.2, 0.2, 0.2}
)

// scene holds the per-mode constants
type scene struct {
	half     float32
	fov      float32
	eye      mgl32.Vec3
	light    mgl32.Vec3 // direction for Directional, position for Point
	spinRate float32
}

var scenes = map[Mode]scene{
	Directional: {half: 1, fov: 30, eye: mgl32.Vec3{3, 3, 7}, light: mgl32.Vec3{0, 3, 4}.Normalize()},
	Point:       {half: 2, fov: 30, eye: mgl32.Vec3{6, 6, 14}, light: mgl32.Vec3{2.3, 4, 3.5}, spinRate: 15},
}

var spinAxis = mgl32.Vec3{1, 1, 1}.Normalize()

// LitCube renders a single lit cube
type LitCube struct {
	mode    Mode
	scene   scene
	shader  *graphics.Shader
	mesh    *graphics.IndexedMesh
	camera  *camera.Camera
	spinner *motion.Spinner
}

// NewLitCube creates a cube demo in the given lighting mode
func NewLitCube(mode Mode, width, height int) *LitCube {
	sc := scenes[mode]
	c := &LitCube{
		mode:   mode,
		scene:  sc,
		camera: camera.NewCamera(width, height, sc.fov, 1, 100, sc.eye),
	}
	if mode == Point {
		c.spinner = motion.NewSpinner(sc.spinRate)
	}
	return c
}

// Init compiles the program for the mode and uploads the cube
func (c *LitCube) Init() error {
	var err error
	switch c.mode {
	case Directional:
		c.shader, err = graphics.NewShaderFromSource(shaders.DirectionalVertex, shaders.DirectionalFragment)
		if err == nil {
			err = c.shader.RequireUniforms("u_MvpMatrix", "u_NormalMatrix", "u_LightColor", "u_LightDirection", "u_AmbientLight")
		}
	case Point:
		c.shader, err = graphics.NewShaderFromSource(shaders.PointLightVertex, shaders.PointLightFragment)
		if err == nil {
			err = c.shader.RequireUniforms("u_MvpMatrix", "u_ModelMatrix", "u_NormalMatrix", "u_LightColor", "u_LightPosition", "u_AmbientLight")
		}
	default:
		return fmt.Errorf("lit cube: unknown mode %d", c.mode)
	}
	if err != nil {
		if c.shader != nil {
			c.shader.Delete()
		}
		return fmt.Errorf("lit cube shader: %w", err)
	}

	c.shader.Use()
	c.shader.SetVector3("u_LightColor", lightColor.X(), lightColor.Y(), lightColor.Z())
	c.shader.SetVector3("u_AmbientLight", ambientLight.X(), ambientLight.Y(), ambientLight.Z())
	l := c.scene.light
	if c.mode == Directional {
		c.shader.SetVector3("u_LightDirection", l.X(), l.Y(), l.Z())
	} else {
		c.shader.SetVector3("u_LightPosition", l.X(), l.Y(), l.Z())
	}

	c.mesh = graphics.NewBoxMesh(geometry.Cube(c.scene.half, cubeColor))
	return nil
}

// ModelMatrix returns the cube's transform for the given spin angle
func (c *LitCube) ModelMatrix(angle float32) mgl32.Mat4 {
	if c.mode == Directional {
		return mgl32.Translate3D(0, 0.1, 0).Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(40), mgl32.Vec3{1, 0, 1}.Normalize()))
	}
	return mgl32.HomogRotate3D(mgl32.DegToRad(angle), spinAxis)
}

func (c *LitCube) Render(ctx renderer.RenderContext) {
	var angle float32
	if c.spinner != nil {
		angle = c.spinner.Advance(ctx.Now)
	}
	model := c.ModelMatrix(angle)
	mvp := c.camera.ViewProjection().Mul4(model)
	normal := robot.NormalMatrix(model)

	c.shader.Use()
	c.shader.SetMatrix4("u_MvpMatrix", &mvp[0])
	c.shader.SetMatrix4("u_NormalMatrix", &normal[0])
	if c.mode == Point {
		c.shader.SetMatrix4("u_ModelMatrix", &model[0])
	}
	c.mesh.Draw()
}

// HandleAction changes the spin rate of the point-lit cube
func (c *LitCube) HandleAction(a input.Action) bool {
	if c.spinner == nil {
		return false
	}
	switch a {
	case input.ActionSpeedUp:
		c.spinner.Faster()
	case input.ActionSpeedDown:
		c.spinner.Slower()
	default:
		return false
	}
	return true
}

// Animated reports whether the cube spins
func (c *LitCube) Animated() bool {
	return c.spinner != nil
}

func (c *LitCube) SetViewport(width, height int) {
	c.camera.SetViewport(width, height)
}

func (c *LitCube) Dispose() {
	if c.mesh != nil {
		c.mesh.Dispose()
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}
