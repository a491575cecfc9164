package main

import (
	"fmt"
	"log"

	"github.com/chazu/stompcase/pkg/enclosure"
	"github.com/chazu/stompcase/pkg/engine"
	"github.com/chazu/stompcase/pkg/kernel"
	"github.com/chazu/stompcase/pkg/tessellate"
)

// App wires the pipeline together: script -> Config -> resolved parameters
// -> assembled scene -> per-part meshes.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	cells  int
}

// NewApp creates an App on the given kernel backend and tessellation
// resolution.
func NewApp(k kernel.Kernel, cells int) *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: k,
		cells:  cells,
	}
}

// Generate runs a configuration script (empty source means all defaults)
// and returns the meshed scene parts.
func (a *App) Generate(source string) ([]*kernel.Mesh, error) {
	cfg, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		return nil, fmt.Errorf("config script: %w", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Printf("config script error: %s", e.Error())
		}
		return nil, fmt.Errorf("config script: %d error(s), first: %s", len(evalErrs), evalErrs[0].Error())
	}

	scene, err := enclosure.Generate(*cfg)
	if err != nil {
		return nil, err
	}

	return tessellate.Tessellate(scene, a.kernel, kernel.MeshOptions{Cells: a.cells})
}

// meshBounds computes the axis-aligned bounds of a mesh's vertices.
func meshBounds(m *kernel.Mesh) (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	for j := 0; j < 3; j++ {
		min[j] = float64(m.Vertices[j])
		max[j] = float64(m.Vertices[j])
	}
	for i := 3; i+2 < len(m.Vertices); i += 3 {
		for j := 0; j < 3; j++ {
			v := float64(m.Vertices[i+j])
			if v < min[j] {
				min[j] = v
			}
			if v > max[j] {
				max[j] = v
			}
		}
	}
	return min, max
}
