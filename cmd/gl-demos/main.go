package main

import (
	"flag"
	"log"
	"runtime"

	"gl-demos/internal/app"
	"gl-demos/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	demoName := flag.String("demo", "jointmodel", "demo to run: "+demoNames())
	fps := flag.Int("fps", config.GetFPSLimit(), "frame rate cap for animated demos, 0 for unlimited")
	defW, defH := config.GetWindowSize()
	width := flag.Int("width", defW, "window width")
	height := flag.Int("height", defH, "window height")
	vsync := flag.Bool("vsync", config.GetVSync(), "wait for vertical sync on swap")
	sky := flag.String("sky", "", "first texture for texturedquad (generated gradient when empty)")
	circle := flag.String("circle", "", "second texture for texturedquad (generated disc when empty)")
	shots := flag.String("screenshot-dir", config.GetScreenshotDir(), "directory for F12 screenshots")
	flag.Parse()

	config.SetFPSLimit(*fps)
	config.SetWindowSize(*width, *height)
	config.SetVSync(*vsync)
	config.SetScreenshotDir(*shots)

	w, h := config.GetWindowSize()
	demo, err := newDemo(*demoName, demoOptions{width: w, height: h, skyPath: *sky, circlePath: *circle})
	if err != nil {
		closer.Fatalln(err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := app.NewWindow("gl-demos: " + *demoName)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	a, err := app.New(window, demo)
	if err != nil {
		panic(err)
	}
	defer a.Dispose()

	// Signal handlers run off the main thread, so only report here
	closer.Bind(func() {
		log.Printf("%s: %d frames presented", *demoName, a.TotalFrames())
	})

	a.Run()
}
