// stompcase generates the two printable halves of a MIDI controller
// housing: a tapered hollow body and a flat perforated lid. Parameters come
// from an optional Lisp configuration script; output is reported per part
// for inspection.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/chazu/stompcase/pkg/kernel"
	"github.com/chazu/stompcase/pkg/kernel/sdfx"
	"github.com/chazu/stompcase/pkg/kernel/spsdf"
)

func main() {
	configPath := flag.String("config", "", "configuration script (defaults apply when omitted)")
	backend := flag.String("backend", "sdfx", "geometry kernel backend: sdfx or spsdf")
	cells := flag.Int("cells", kernel.DefaultMeshCells, "marching cubes resolution")
	flag.Parse()

	var k kernel.Kernel
	switch *backend {
	case "sdfx":
		k = sdfx.New()
	case "spsdf":
		k = spsdf.New()
	default:
		log.Fatalf("unknown backend %q", *backend)
	}

	source := ""
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("reading config script: %v", err)
		}
		source = string(data)
	}

	app := NewApp(k, *cells)
	meshes, err := app.Generate(source)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	for _, m := range meshes {
		min, max := meshBounds(m)
		log.Printf("%s: %d triangles, bounds [%.1f %.1f %.1f] to [%.1f %.1f %.1f]",
			m.PartName, m.TriangleCount(),
			min[0], min[1], min[2], max[0], max[1], max[2])
	}
}
