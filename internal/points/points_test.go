package points

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestToClip(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float32
		wantY float32
	}{
		{"centre", 200, 100, 0, 0},
		{"top left", 0, 0, -1, 1},
		{"bottom right", 400, 200, 1, -1},
		{"quarter", 300, 150, 0.5, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ToClip(tt.x, tt.y, 400, 200)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("ToClip(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestQuadrantColor(t *testing.T) {
	tests := []struct {
		x, y float32
		want string
	}{
		{0.5, 0.5, "red"},
		{0, 0, "red"},
		{-0.5, -0.5, "green"},
		{-0.5, 0.5, "white"},
		{0.5, -0.5, "white"},
		{0, -0.1, "white"},
	}
	names := map[string]mgl32.Vec4{"red": Red, "green": Green, "white": White}
	for _, tt := range tests {
		if got := QuadrantColor(tt.x, tt.y); got != names[tt.want] {
			t.Errorf("QuadrantColor(%v, %v) = %v, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCanvasClick(t *testing.T) {
	var c Canvas
	if _, ok := c.Click(10, 10, 0, 100); ok {
		t.Fatal("click on zero-sized window should be ignored")
	}

	clicks := []struct {
		x, y float64
		want Point
	}{
		{300, 50, Point{X: 0.5, Y: 0.5, Color: Red}},      // first quadrant
		{100, 150, Point{X: -0.5, Y: -0.5, Color: Green}}, // third quadrant
		{100, 50, Point{X: -0.5, Y: 0.5, Color: White}},   // second quadrant
	}
	for i, cl := range clicks {
		p, ok := c.Click(cl.x, cl.y, 400, 200)
		if !ok || p != cl.want {
			t.Errorf("click %d = %+v (ok %v), want %+v", i, p, ok, cl.want)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}

	v := c.Vertices()
	if len(v) != 3*FloatsPerPoint {
		t.Fatalf("len(Vertices) = %d, want %d", len(v), 3*FloatsPerPoint)
	}
	if v[FloatsPerPoint] != -0.5 || v[FloatsPerPoint+3] != 1 {
		t.Errorf("second vertex = %v, want x -0.5 and green", v[FloatsPerPoint:2*FloatsPerPoint])
	}
}
