package motion

import "math"

// Wrap360 reduces deg modulo 360 keeping the sign of deg (truncated remainder).
// -3 stays -3; 363 becomes 3.
func Wrap360(deg float32) float32 {
	return float32(math.Mod(float64(deg), 360))
}
