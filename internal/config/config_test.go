package config

import "testing"

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	tests := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{60, 60},
		{5000, 1000},
	}
	for _, tt := range tests {
		SetFPSLimit(tt.in)
		if got := GetFPSLimit(); got != tt.want {
			t.Errorf("SetFPSLimit(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSetWindowSizeClamps(t *testing.T) {
	w0, h0 := GetWindowSize()
	defer SetWindowSize(w0, h0)

	SetWindowSize(10, 700)
	if w, h := GetWindowSize(); w != 100 || h != 700 {
		t.Fatalf("window size = %dx%d, want 100x700", w, h)
	}
}

func TestSetScreenshotDirIgnoresEmpty(t *testing.T) {
	old := GetScreenshotDir()
	defer SetScreenshotDir(old)

	SetScreenshotDir("shots")
	SetScreenshotDir("")
	if got := GetScreenshotDir(); got != "shots" {
		t.Fatalf("dir = %q, want shots", got)
	}
}
