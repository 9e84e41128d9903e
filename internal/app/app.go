package app

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"gl-demos/internal/config"
	"gl-demos/internal/graphics"
	"gl-demos/internal/graphics/renderer"
	"gl-demos/internal/input"
	"gl-demos/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Demo is a renderable that reacts to input actions
type Demo interface {
	renderer.Renderable
	// HandleAction applies one action and reports whether a redraw is needed
	HandleAction(a input.Action) bool
	// Animated demos render every frame; the others only after input
	Animated() bool
}

// Clickable demos receive left clicks in window coordinates
type Clickable interface {
	HandleClick(x, y float64, width, height int) bool
}

// App runs one demo in a window until the window closes
type App struct {
	window       *glfw.Window
	renderer     *renderer.Renderer
	demo         Demo
	inputManager *input.InputManager
	fpsLimiter   *FPSLimiter

	fbWidth, fbHeight int
	needsRedraw       bool
	captureRequested  bool

	// Timing
	frames           int
	totalFrames      atomic.Int64
	lastFPSCheckTime time.Time
}

// New initializes the demo inside window and wires the window callbacks
func New(window *glfw.Window, demo Demo) (*App, error) {
	r, err := renderer.NewRenderer(demo)
	if err != nil {
		return nil, err
	}

	a := &App{
		window:           window,
		renderer:         r,
		demo:             demo,
		inputManager:     input.NewInputManager(),
		fpsLimiter:       NewFPSLimiter(),
		needsRedraw:      true,
		lastFPSCheckTime: time.Now(),
	}

	a.fbWidth, a.fbHeight = window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(a.fbWidth), int32(a.fbHeight))
	r.UpdateViewport(a.fbWidth, a.fbHeight)

	a.inputManager.SetKeyCallback(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		a.fbWidth, a.fbHeight = fbWidth, fbHeight
		a.renderer.UpdateViewport(fbWidth, fbHeight)
		a.needsRedraw = true
	})

	if c, ok := demo.(Clickable); ok {
		window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
			if button != glfw.MouseButtonLeft || action != glfw.Press {
				return
			}
			x, y := w.GetCursorPos()
			width, height := w.GetSize()
			if c.HandleClick(x, y, width, height) {
				a.needsRedraw = true
			}
		})
	}

	// Called while the window is being resized or uncovered
	window.SetRefreshCallback(func(w *glfw.Window) {
		a.needsRedraw = true
	})

	return a, nil
}

// TotalFrames returns how many frames have been presented; safe from any goroutine
func (a *App) TotalFrames() int64 {
	return a.totalFrames.Load()
}

// Run starts the main loop
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

// Dispose releases the demo's GL resources
func (a *App) Dispose() {
	a.renderer.Dispose()
}

func (a *App) tick() {
	profiling.ResetFrame()

	animated := a.demo.Animated()
	if animated || a.needsRedraw {
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	} else {
		// Nothing moves until a key arrives
		glfw.WaitEvents()
		a.fpsLimiter.Reset()
	}

	now := time.Now()

	a.handleInputActions()
	if a.window.ShouldClose() {
		return
	}
	if !animated && !a.needsRedraw {
		return
	}

	renderDur := a.renderFrame(now)

	if a.captureRequested {
		a.captureRequested = false
		a.saveScreenshot()
	}

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	a.needsRedraw = false
	a.totalFrames.Add(1)

	a.reportTiming(now, renderDur, animated)

	if animated {
		a.fpsLimiter.Wait()
	}
}

// handleInputActions applies queued key presses in arrival order, so the
// frame sees every change committed before it starts drawing
func (a *App) handleInputActions() {
	for _, act := range a.inputManager.Drain() {
		switch act {
		case input.ActionQuit:
			a.window.SetShouldClose(true)
		case input.ActionScreenshot:
			a.captureRequested = true
			a.needsRedraw = true
		default:
			if a.demo.HandleAction(act) {
				a.needsRedraw = true
			}
		}
	}
}

func (a *App) renderFrame(now time.Time) time.Duration {
	defer profiling.Track("renderer.Render")()
	renderStart := time.Now()
	a.renderer.Render(renderer.RenderContext{Now: now})
	return time.Since(renderStart)
}

func (a *App) saveScreenshot() {
	defer profiling.Track("capture.Screenshot")()
	path, err := graphics.SaveScreenshot(config.GetScreenshotDir(), a.fbWidth, a.fbHeight)
	if err != nil {
		log.Printf("screenshot failed: %v", err)
		return
	}
	log.Printf("saved screenshot %s", path)
}

func (a *App) reportTiming(frameStart time.Time, renderDur time.Duration, animated bool) {
	a.frames++
	if animated && time.Since(a.lastFPSCheckTime) >= time.Second {
		fmt.Println("FPS: ", a.frames)
		a.frames = 0
		a.lastFPSCheckTime = time.Now()
	}

	target := TargetFrameTime()
	if target == 0 {
		return
	}
	if total := time.Since(frameStart); total > 2*target {
		log.Printf("Slow frame: %v (render %v, glfw %v). Top tasks: %s",
			total, renderDur, profiling.SumWithPrefix("glfw."), profiling.TopN(3))
	}
}
