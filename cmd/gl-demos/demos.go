package main

import (
	"fmt"
	"sort"
	"strings"

	"gl-demos/internal/app"
	"gl-demos/internal/graphics/renderables/hellocanvas"
	"gl-demos/internal/graphics/renderables/jointmodel"
	"gl-demos/internal/graphics/renderables/litcube"
	"gl-demos/internal/graphics/renderables/multipoint"
	"gl-demos/internal/graphics/renderables/texturedquad"
)

type demoOptions struct {
	width, height int
	skyPath       string
	circlePath    string
}

var demos = map[string]func(o demoOptions) app.Demo{
	"hellocanvas": func(o demoOptions) app.Demo { return hellocanvas.NewHelloCanvas() },
	"jointmodel":  func(o demoOptions) app.Demo { return jointmodel.NewJointModel(o.width, o.height) },
	"hello3d":     func(o demoOptions) app.Demo { return litcube.NewLitCube(litcube.Directional, o.width, o.height) },
	"pointlight":  func(o demoOptions) app.Demo { return litcube.NewLitCube(litcube.Point, o.width, o.height) },
	"multipoint":  func(o demoOptions) app.Demo { return multipoint.NewMultiPoint() },
	"texturedquad": func(o demoOptions) app.Demo {
		return texturedquad.NewTexturedQuad(o.skyPath, o.circlePath)
	},
}

func demoNames() string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func newDemo(name string, o demoOptions) (app.Demo, error) {
	build, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (want %s)", name, demoNames())
	}
	return build(o), nil
}
