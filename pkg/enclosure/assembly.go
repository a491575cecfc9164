package enclosure

import (
	"github.com/chazu/stompcase/pkg/csg"
	"gonum.org/v1/gonum/spatial/r3"
)

// Part names in the output scene.
const (
	PartBody = "enclosure body"
	PartLid  = "top lid"
)

// partGap is the visual spacing between the two halves in the scene.
const partGap = 20.0

// Part is one named, positioned solid in the output scene.
type Part struct {
	Name   string
	Solid  *csg.Solid
	Offset r3.Vec
}

// Scene is the generator's output: the finished halves placed side by side
// in a shared frame for joint inspection.
type Scene struct {
	Parts []Part
}

// Part returns the named part, or nil.
func (s *Scene) Part(name string) *Part {
	for i := range s.Parts {
		if s.Parts[i].Name == name {
			return &s.Parts[i]
		}
	}
	return nil
}

// Assemble builds both halves from resolved parameters and places them in
// one scene: the body at the origin, the lid beside it along x.
func Assemble(r *Resolved) (*Scene, error) {
	body, err := Body(r)
	if err != nil {
		return nil, err
	}
	lid, err := Lid(r)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Parts: []Part{
			{Name: PartBody, Solid: body},
			{Name: PartLid, Solid: lid, Offset: r3.Vec{X: r.Width + partGap}},
		},
	}, nil
}

// Generate resolves a raw Config and assembles the scene in one call.
func Generate(cfg Config) (*Scene, error) {
	resolved, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	return Assemble(resolved)
}
