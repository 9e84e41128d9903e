// Package points keeps the clicked points of the canvas demo in clip space.
package points

import "github.com/go-gl/mathgl/mgl32"

var (
	Red   = mgl32.Vec4{1, 0, 0, 1}
	Green = mgl32.Vec4{0, 1, 0, 1}
	White = mgl32.Vec4{1, 1, 1, 1}
)

// FloatsPerPoint is the interleaved layout: x, y, r, g, b, a
const FloatsPerPoint = 6

// Point is one placed point
type Point struct {
	X, Y  float32
	Color mgl32.Vec4
}

// ToClip converts window coordinates (origin top-left, y down) into clip
// coordinates (origin at the centre, y up) for a window of the given size.
func ToClip(x, y float64, width, height int) (float32, float32) {
	halfW := float64(width) / 2
	halfH := float64(height) / 2
	return float32((x - halfW) / halfW), float32((halfH - y) / halfH)
}

// QuadrantColor is red in the first quadrant, green in the third and white
// elsewhere. Points on the axes count as positive.
func QuadrantColor(x, y float32) mgl32.Vec4 {
	switch {
	case x >= 0 && y >= 0:
		return Red
	case x < 0 && y < 0:
		return Green
	default:
		return White
	}
}

// Canvas accumulates points in click order
type Canvas struct {
	points []Point
}

// Click places a point under the cursor; sizes <= 0 are ignored
func (c *Canvas) Click(x, y float64, width, height int) (Point, bool) {
	if width <= 0 || height <= 0 {
		return Point{}, false
	}
	cx, cy := ToClip(x, y, width, height)
	p := Point{X: cx, Y: cy, Color: QuadrantColor(cx, cy)}
	c.points = append(c.points, p)
	return p, true
}

// Len returns the number of points
func (c *Canvas) Len() int {
	return len(c.points)
}

// Vertices returns the points interleaved for upload
func (c *Canvas) Vertices() []float32 {
	out := make([]float32, 0, len(c.points)*FloatsPerPoint)
	for _, p := range c.points {
		out = append(out, p.X, p.Y, p.Color[0], p.Color[1], p.Color[2], p.Color[3])
	}
	return out
}
