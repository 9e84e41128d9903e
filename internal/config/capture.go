package config

import "sync"

// CaptureSettings holds screenshot configuration
type CaptureSettings struct {
	mu  sync.RWMutex
	dir string
}

var globalCaptureSettings = &CaptureSettings{
	dir: "screenshots",
}

// GetScreenshotDir returns where screenshots are written
func GetScreenshotDir() string {
	globalCaptureSettings.mu.RLock()
	defer globalCaptureSettings.mu.RUnlock()
	return globalCaptureSettings.dir
}

// SetScreenshotDir sets where screenshots are written; empty keeps the current value
func SetScreenshotDir(dir string) {
	if dir == "" {
		return
	}
	globalCaptureSettings.mu.Lock()
	defer globalCaptureSettings.mu.Unlock()
	globalCaptureSettings.dir = dir
}
