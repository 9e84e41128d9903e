package motion

import (
	"testing"
	"time"
)

func TestSpinnerAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	s := NewSpinner(45)

	if got := s.Advance(start); got != 0 {
		t.Fatalf("first advance = %v, want 0", got)
	}
	if got := s.Advance(start.Add(2 * time.Second)); got != 90 {
		t.Fatalf("after 2s = %v, want 90", got)
	}
	// 90 + 45*8 = 450 -> 90
	if got := s.Advance(start.Add(10 * time.Second)); got != 90 {
		t.Fatalf("after 10s = %v, want 90", got)
	}
}

func TestSpinnerNegativeRateKeepsSign(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewSpinner(-30)
	s.Advance(start)
	if got := s.Advance(start.Add(time.Second)); got != -30 {
		t.Fatalf("angle = %v, want -30", got)
	}
}

func TestSpinnerSpeedSteps(t *testing.T) {
	s := NewSpinner(45)
	s.Faster()
	s.Faster()
	s.Slower()
	if s.DegreesPerSecond != 55 {
		t.Fatalf("rate = %v, want 55", s.DegreesPerSecond)
	}
}
