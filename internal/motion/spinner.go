package motion

import "time"

// SpeedStep is how much Faster and Slower change the rate, in degrees per second
const SpeedStep = 10.0

// Spinner turns an angle at a constant rate measured against wall time
type Spinner struct {
	DegreesPerSecond float32

	angle float32
	last  time.Time
}

// NewSpinner creates a spinner at rest at angle 0
func NewSpinner(degreesPerSecond float32) *Spinner {
	return &Spinner{DegreesPerSecond: degreesPerSecond}
}

// Advance moves the angle by the time elapsed since the previous call and
// returns it. The first call only records now.
func (s *Spinner) Advance(now time.Time) float32 {
	if !s.last.IsZero() {
		elapsed := float32(now.Sub(s.last).Seconds())
		s.angle = Wrap360(s.angle + s.DegreesPerSecond*elapsed)
	}
	s.last = now
	return s.angle
}

func (s *Spinner) Faster() { s.DegreesPerSecond += SpeedStep }

func (s *Spinner) Slower() { s.DegreesPerSecond -= SpeedStep }
