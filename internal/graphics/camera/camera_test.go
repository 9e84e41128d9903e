package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewProjectionCentersTarget(t *testing.T) {
	c := NewCamera(900, 600, 50, 1, 100, mgl32.Vec3{20, 10, 30})
	clip := c.ViewProjection().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	if !ndc.Vec2().ApproxEqualThreshold(mgl32.Vec2{}, 1e-5) {
		t.Fatalf("look-at target projects to %v, want screen centre", ndc)
	}
	if ndc.Z() <= -1 || ndc.Z() >= 1 {
		t.Fatalf("target depth %v outside clip range", ndc.Z())
	}
}

func TestSetViewport(t *testing.T) {
	c := NewCamera(800, 400, 30, 1, 100, mgl32.Vec3{0, 0, 5})
	if c.AspectRatio != 2 {
		t.Fatalf("aspect = %v, want 2", c.AspectRatio)
	}
	c.SetViewport(0, 0)
	if c.AspectRatio != 2 {
		t.Fatalf("zero viewport changed aspect to %v", c.AspectRatio)
	}
	c.SetViewport(300, 300)
	if c.AspectRatio != 1 {
		t.Fatalf("aspect = %v, want 1", c.AspectRatio)
	}
}
