package motion

import "testing"

func TestWrap360KeepsSign(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0},
		{-3, -3},
		{363, 3},
		{-363, -3},
		{360, 0},
		{720.5, 0.5},
	}
	for _, tt := range tests {
		if got := Wrap360(tt.in); got != tt.want {
			t.Errorf("Wrap360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
