package config

import "sync"

// RenderSettings holds window and frame pacing configuration
type RenderSettings struct {
	mu           sync.RWMutex
	fpsLimit     int // 0 = unlimited
	windowWidth  int
	windowHeight int
	vsync        bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:     120,
	windowWidth:  900,
	windowHeight: 600,
	vsync:        false,
}

// GetFPSLimit returns the frame cap, 0 when unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetWindowSize returns the initial window size in screen coordinates
func GetWindowSize() (int, int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.windowWidth, globalRenderSettings.windowHeight
}

// SetWindowSize sets the initial window size
func SetWindowSize(width, height int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Keep the canvas usable
	if width < 100 {
		width = 100
	}
	if height < 100 {
		height = 100
	}

	globalRenderSettings.windowWidth = width
	globalRenderSettings.windowHeight = height
}

// GetVSync reports whether buffer swaps wait for the display refresh
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync enables or disables vsync
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}
