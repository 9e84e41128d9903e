package graphics

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"gl-demos/internal/imaging"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer copies the back buffer into an image, top row first
func ReadFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	imaging.FlipVertical(img)
	return img
}

// SaveScreenshot writes the current framebuffer to dir as a timestamped
// WebP file and returns its path.
func SaveScreenshot(dir string, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("screenshot: invalid framebuffer size %dx%d", width, height)
	}
	name := fmt.Sprintf("frame-%s.webp", time.Now().Format("20060102-150405.000"))
	path := filepath.Join(dir, name)
	if err := imaging.SaveWebP(path, ReadFramebuffer(width, height)); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}
