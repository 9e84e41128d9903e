package renderer

import (
	"time"
)

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	Now time.Time
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
