package enclosure

import (
	"testing"

	"github.com/chazu/stompcase/pkg/csg"
	"github.com/chazu/stompcase/pkg/kernel"
	"github.com/chazu/stompcase/pkg/kernel/sdfx"
)

func TestGenerateScene(t *testing.T) {
	scene, err := Generate(DefaultConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(scene.Parts) != 2 {
		t.Fatalf("scene has %d parts, want 2", len(scene.Parts))
	}
	body := scene.Part(PartBody)
	lid := scene.Part(PartLid)
	if body == nil || lid == nil {
		t.Fatal("scene is missing a named part")
	}
	if body.Offset.X != 0 {
		t.Errorf("body offset x = %g, want 0", body.Offset.X)
	}
	if lid.Offset.X <= 185 {
		t.Errorf("lid offset x = %g, want clear of the 185 wide body", lid.Offset.X)
	}
	if scene.Part("no such part") != nil {
		t.Error("lookup of unknown part should return nil")
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	k := sdfx.New()
	evalPart := func(name string) kernel.Solid {
		scene, err := Generate(DefaultConfig())
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		solid, err := csg.Evaluate(scene.Part(name).Solid, k)
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		return solid
	}

	probes := [][3]float64{
		{1, 97.5, 15},
		{92.5, 97.5, 1.5},
		{8, 8, 30},
		{46.25, 193.5, 27.5},
		{92.5, 100, 60},
	}
	for _, name := range []string{PartBody, PartLid} {
		first := evalPart(name)
		second := evalPart(name)

		fMin, fMax := first.BoundingBox()
		sMin, sMax := second.BoundingBox()
		if fMin != sMin || fMax != sMax {
			t.Errorf("%s: bounding boxes differ between runs", name)
		}
		for _, p := range probes {
			d1 := k.Distance(first, p[0], p[1], p[2])
			d2 := k.Distance(second, p[0], p[1], p[2])
			if d1 != d2 {
				t.Errorf("%s: distance at %v differs between runs: %g vs %g", name, p, d1, d2)
			}
		}
	}
}
