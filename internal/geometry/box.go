package geometry

import "github.com/go-gl/mathgl/mgl32"

// Box is an indexed cuboid with one set of four vertices per face so every
// face gets its own flat normal.
type Box struct {
	Positions []float32 // xyz per vertex
	Colors    []float32 // rgb per vertex
	Normals   []float32 // xyz per vertex
	Indices   []uint8
}

// Face order: front, right, up, left, down, back
var faceNormals = [6]mgl32.Vec3{
	{0, 0, 1},
	{1, 0, 0},
	{0, 1, 0},
	{-1, 0, 0},
	{0, -1, 0},
	{0, 0, -1},
}

// Corner indices into the 8 cube corners, counter-clockwise seen from outside
var faceCorners = [6][4]int{
	{0, 1, 2, 3}, // v0-v1-v2-v3 front
	{0, 3, 4, 5}, // v0-v3-v4-v5 right
	{0, 5, 6, 1}, // v0-v5-v6-v1 up
	{1, 6, 7, 2}, // v1-v6-v7-v2 left
	{7, 4, 3, 2}, // v7-v4-v3-v2 down
	{4, 7, 6, 5}, // v4-v7-v6-v5 back
}

// newBox builds a box spanning min..max with per-face colors
func newBox(min, max mgl32.Vec3, colors [6]mgl32.Vec3) *Box {
	corners := [8]mgl32.Vec3{
		{max[0], max[1], max[2]},
		{min[0], max[1], max[2]},
		{min[0], min[1], max[2]},
		{max[0], min[1], max[2]},
		{max[0], min[1], min[2]},
		{max[0], max[1], min[2]},
		{min[0], max[1], min[2]},
		{min[0], min[1], min[2]},
	}

	b := &Box{
		Positions: make([]float32, 0, 24*3),
		Colors:    make([]float32, 0, 24*3),
		Normals:   make([]float32, 0, 24*3),
		Indices:   make([]uint8, 0, 36),
	}
	for f := 0; f < 6; f++ {
		for _, c := range faceCorners[f] {
			b.Positions = append(b.Positions, corners[c][:]...)
			b.Colors = append(b.Colors, colors[f][:]...)
			b.Normals = append(b.Normals, faceNormals[f][:]...)
		}
		base := uint8(f * 4)
		b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return b
}

func solid(c mgl32.Vec3) [6]mgl32.Vec3 {
	return [6]mgl32.Vec3{c, c, c, c, c, c}
}

// UnitBox is a 1x1x1 box whose origin is the centre of its bottom face,
// so scaling by (w, h, d) yields a segment standing on its joint.
func UnitBox(color mgl32.Vec3) *Box {
	return newBox(mgl32.Vec3{-0.5, 0, -0.5}, mgl32.Vec3{0.5, 1, 0.5}, solid(color))
}

// Cube is a box centred on the origin with the given half extent
func Cube(half float32, color mgl32.Vec3) *Box {
	return newBox(mgl32.Vec3{-half, -half, -half}, mgl32.Vec3{half, half, half}, solid(color))
}
