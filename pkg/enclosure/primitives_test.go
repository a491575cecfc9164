package enclosure

import (
	"errors"
	"testing"

	"github.com/chazu/stompcase/pkg/csg"
	"github.com/chazu/stompcase/pkg/kernel/sdfx"
)

func TestWedgeLowersToTaperedPrism(t *testing.T) {
	k := sdfx.New()
	solid, err := csg.Evaluate(Wedge(100, 120, 20, 40, 6), k)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	min, max := solid.BoundingBox()
	if min[0] != 0 || min[1] != 0 || min[2] != 0 {
		t.Errorf("wedge min corner = %v, want origin", min)
	}
	if max[0] != 100 || max[1] != 120 || max[2] != 40 {
		t.Errorf("wedge max corner = %v, want (100, 120, 40)", max)
	}
	// Roof midpoint sits at the mean of the two heights.
	if d := k.Distance(solid, 50, 60, 29); d >= 0 {
		t.Errorf("under roof midpoint: distance = %g, want < 0", d)
	}
	if d := k.Distance(solid, 50, 60, 31); d <= 0 {
		t.Errorf("over roof midpoint: distance = %g, want > 0", d)
	}
}

func TestBossHasOpenBore(t *testing.T) {
	boss, err := Boss(10, 8, 3)
	if err != nil {
		t.Fatalf("Boss failed: %v", err)
	}
	k := sdfx.New()
	solid, err := csg.Evaluate(boss, k)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if d := k.Distance(solid, 0, 0, 5); d <= 0 {
		t.Errorf("bore center: distance = %g, want > 0", d)
	}
	if d := k.Distance(solid, 2.7, 0, 5); d >= 0 {
		t.Errorf("annulus: distance = %g, want < 0", d)
	}
	if d := k.Distance(solid, 2.7, 0, 11); d <= 0 {
		t.Errorf("above boss: distance = %g, want > 0", d)
	}
}

func TestBossRejectsSwallowedBore(t *testing.T) {
	_, err := Boss(10, 8, 9)
	if err == nil {
		t.Fatal("expected error")
	}
	var geo *GeometryError
	if !errors.As(err, &geo) {
		t.Fatalf("error %v is not a GeometryError", err)
	}
}
