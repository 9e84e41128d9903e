package graphics

import (
	"image"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	textureCache = make(map[string]uint32)
	cacheMutex   sync.RWMutex
)

// GetTexture returns a cached texture ID for the given key.
// On a miss it calls load and uploads the result. Keys are usually file
// paths; generated images use a descriptive name instead.
func GetTexture(key string, load func() (image.Image, error)) (uint32, error) {
	cacheMutex.RLock()
	if tex, ok := textureCache[key]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := textureCache[key]; ok {
		return tex, nil
	}

	img, err := load()
	if err != nil {
		return 0, err
	}
	tex, _, _ := UploadTexture(img)

	textureCache[key] = tex
	return tex, nil
}

// ReleaseTextures deletes every cached texture
func ReleaseTextures() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	for key, tex := range textureCache {
		gl.DeleteTextures(1, &tex)
		delete(textureCache, key)
	}
}
