package jointmodel

import (
	"fmt"
	"log"

	"gl-demos/internal/geometry"
	"gl-demos/internal/graphics"
	"gl-demos/internal/graphics/camera"
	"gl-demos/internal/graphics/renderer"
	"gl-demos/internal/graphics/shaders"
	"gl-demos/internal/input"
	"gl-demos/internal/robot"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	armColor      = mgl32.Vec3{1, 0, 0}
	lightColor    = mgl32.Vec3{1, 1, 1}
	lightPosition = mgl32.Vec3{5.4, 5, 4}
	ambientLight  = mgl32.Vec3{0.2, 0.2, 0.2}
	eye           = mgl32.Vec3{20, 10, 30}
)

// JointModel renders the robot arm under a point light and turns its
// joints from keyboard actions
type JointModel struct {
	shader *graphics.Shader
	mesh   *graphics.IndexedMesh
	camera *camera.Camera

	arm    *robot.Hierarchy
	angles robot.Angles
}

// NewJointModel creates the arm in its default pose
func NewJointModel(width, height int) *JointModel {
	return &JointModel{
		camera: camera.NewCamera(width, height, 50, 1, 100, eye),
		arm:    robot.NewArm(),
		angles: robot.DefaultAngles(),
	}
}

// Init compiles the lighting program and uploads the shared box
func (m *JointModel) Init() error {
	var err error
	m.shader, err = graphics.NewShaderFromSource(shaders.PointLightVertex, shaders.PointLightFragment)
	if err != nil {
		return fmt.Errorf("joint model shader: %w", err)
	}
	if err := m.shader.RequireUniforms(
		"u_MvpMatrix", "u_ModelMatrix", "u_NormalMatrix",
		"u_LightColor", "u_LightPosition", "u_AmbientLight",
	); err != nil {
		m.shader.Delete()
		return fmt.Errorf("joint model shader: %w", err)
	}

	m.shader.Use()
	m.shader.SetVector3("u_LightColor", lightColor.X(), lightColor.Y(), lightColor.Z())
	m.shader.SetVector3("u_LightPosition", lightPosition.X(), lightPosition.Y(), lightPosition.Z())
	m.shader.SetVector3("u_AmbientLight", ambientLight.X(), ambientLight.Y(), ambientLight.Z())

	m.mesh = graphics.NewBoxMesh(geometry.UnitBox(armColor))
	return nil
}

// Render draws every segment of the arm for the current pose
func (m *JointModel) Render(ctx renderer.RenderContext) {
	m.shader.Use()
	if err := m.arm.Render(m.angles, m.camera.ViewProjection(), m); err != nil {
		log.Printf("joint model: %v", err)
	}
}

// DrawSegment uploads one segment's matrices and draws the shared box
func (m *JointModel) DrawSegment(call robot.DrawCall) error {
	m.shader.SetMatrix4("u_MvpMatrix", &call.MVP[0])
	m.shader.SetMatrix4("u_ModelMatrix", &call.Model[0])
	m.shader.SetMatrix4("u_NormalMatrix", &call.Normal[0])
	m.mesh.Draw()
	return nil
}

// HandleAction applies a joint action; it reports whether the pose changed
func (m *JointModel) HandleAction(a input.Action) bool {
	next, ok := robot.HandleKey(m.angles, input.JointKey(a))
	if ok {
		m.angles = next
	}
	return ok
}

// Animated is false: the arm only moves on input
func (m *JointModel) Animated() bool {
	return false
}

func (m *JointModel) SetViewport(width, height int) {
	m.camera.SetViewport(width, height)
}

func (m *JointModel) Dispose() {
	if m.mesh != nil {
		m.mesh.Dispose()
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}
