package main

import (
	"strings"
	"testing"

	"github.com/chazu/stompcase/pkg/enclosure"
	"github.com/chazu/stompcase/pkg/kernel"
	"github.com/chazu/stompcase/pkg/kernel/sdfx"
)

// testCells keeps end-to-end meshing fast.
const testCells = 64

func TestAppGeneratesDefaultScene(t *testing.T) {
	app := NewApp(sdfx.New(), testCells)
	meshes, err := app.Generate("")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}
	if meshes[0].PartName != enclosure.PartBody || meshes[1].PartName != enclosure.PartLid {
		t.Errorf("part names = %q, %q", meshes[0].PartName, meshes[1].PartName)
	}
	for _, m := range meshes {
		if m.IsEmpty() {
			t.Errorf("%s mesh is empty", m.PartName)
		}
	}

	// The lid is placed beside the 185 wide body.
	lidMin, _ := meshBounds(meshes[1])
	if lidMin[0] < 185 {
		t.Errorf("lid starts at x=%g, want clear of the body", lidMin[0])
	}
}

func TestAppAppliesConfigScript(t *testing.T) {
	app := NewApp(sdfx.New(), testCells)
	meshes, err := app.Generate(`(enclosure :switches-per-row 3 :edge-margin 30)`)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	// Width shrinks to 2*45 + 60 = 150; allow marching cubes slack.
	_, bodyMax := meshBounds(meshes[0])
	if bodyMax[0] < 140 || bodyMax[0] > 160 {
		t.Errorf("body extends to x=%g, want about 150", bodyMax[0])
	}
}

func TestAppReportsScriptErrors(t *testing.T) {
	app := NewApp(sdfx.New(), testCells)
	_, err := app.Generate(`(enclosure :wing-span 1)`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "config script") {
		t.Errorf("error %q does not mention the config script", err)
	}
}

func TestAppReportsConfigurationErrors(t *testing.T) {
	app := NewApp(sdfx.New(), testCells)
	_, err := app.Generate(`(enclosure :depth -5)`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Depth") {
		t.Errorf("error %q does not name the parameter", err)
	}
}

func TestMeshBounds(t *testing.T) {
	m := &kernel.Mesh{Vertices: []float32{
		0, 0, 0,
		10, -5, 3,
		2, 8, -1,
	}}
	min, max := meshBounds(m)
	if min != [3]float64{0, -5, -1} {
		t.Errorf("min = %v", min)
	}
	if max != [3]float64{10, 8, 3} {
		t.Errorf("max = %v", max)
	}
	if gotMin, gotMax := meshBounds(&kernel.Mesh{}); gotMin != gotMax {
		t.Error("empty mesh should have zero bounds")
	}
}
