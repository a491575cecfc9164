package enclosure

import "github.com/chazu/stompcase/pkg/csg"

// countersinkOvershoot extends countersink cones past the top face so the
// cut never leaves a zero-thickness cap.
const countersinkOvershoot = 0.5

// throughBore is a vertical drill through the full lid thickness at (x, y).
func (r *Resolved) throughBore(x, y, dia float64) *csg.Solid {
	return csg.Translate(csg.Cylinder(r.LidThickness+2*pierce, dia/2), x, y, r.LidThickness/2)
}

// countersink is a 45 degree conical widening of a bore's mouth, cut from
// the top face. The cone is extended past the surface at the same slope so
// its rim sits above the lid.
func (r *Resolved) countersink(x, y, holeDia float64) *csg.Solid {
	depth := (r.CountersinkDiameter - holeDia) / 2
	h := depth + countersinkOvershoot
	cone := csg.Cone(h, holeDia/2, r.CountersinkDiameter/2+countersinkOvershoot)
	return csg.Translate(cone, x, y, r.LidThickness-depth+h/2)
}

// Lid composes the flat mating plate: footswitch bores, display window,
// side-switch bores, countersunk display and body mounting holes, and
// display standoff pillars on the underside. Body mounting holes use the
// slant projection so they land on the body's boss centers.
func Lid(r *Resolved) (*csg.Solid, error) {
	plate := Wedge(r.Width, r.LidLength, r.LidThickness, r.LidThickness, r.CornerRadius)

	var cuts []*csg.Solid

	// Footswitch grid, two rows by SwitchesPerRow columns.
	for _, rowY := range []float64{r.RowOffsetA, r.RowOffsetB} {
		if rowY >= r.LidLength {
			return nil, geomErr("switch bores", "row offset %g is off the %g lid", rowY, r.LidLength)
		}
		for i := 0; i < r.SwitchesPerRow; i++ {
			cuts = append(cuts, r.throughBore(r.SwitchColumnX(i), rowY, r.SwitchHoleDiameter))
		}
	}

	// Display window.
	dc := r.DisplayCenter()
	if dc.X-r.DisplayWidth/2 <= 0 || dc.X+r.DisplayWidth/2 >= r.Width ||
		dc.Y-r.DisplayHeight/2 <= 0 || dc.Y+r.DisplayHeight/2 >= r.LidLength {
		return nil, geomErr("display window", "%g x %g window at (%g, %g) leaves the lid",
			r.DisplayWidth, r.DisplayHeight, dc.X, dc.Y)
	}
	cuts = append(cuts, csg.Translate(
		csg.Box(r.DisplayWidth, r.DisplayHeight, r.LidThickness+2*pierce),
		dc.X-r.DisplayWidth/2, dc.Y-r.DisplayHeight/2, -pierce))

	// Side switches, symmetric about the display center.
	sideY := dc.Y + r.SideSwitchOffsetY
	if r.SideSwitchSpacing == 0 {
		cuts = append(cuts, r.throughBore(dc.X, sideY, r.SwitchHoleDiameter))
	} else {
		cuts = append(cuts,
			r.throughBore(dc.X-r.SideSwitchSpacing/2, sideY, r.SwitchHoleDiameter),
			r.throughBore(dc.X+r.SideSwitchSpacing/2, sideY, r.SwitchHoleDiameter))
	}

	// Display and body mounting holes, countersunk from the top face.
	mounts := append(r.DisplayMounts(), r.LidMounts()...)
	for _, mp := range mounts {
		cuts = append(cuts, r.throughBore(mp.Pos.X, mp.Pos.Y, mp.Diameter))
		if mp.Countersunk {
			cuts = append(cuts, r.countersink(mp.Pos.X, mp.Pos.Y, mp.Diameter))
		}
	}

	lid := csg.Difference(plate, cuts...)

	// Display standoffs hang from the underside at the mount corners,
	// spacing the display board off the lid's inner face.
	for _, mp := range r.DisplayMounts() {
		boss, err := Boss(r.DisplayStandoffHeight, r.DisplayStandoffDia, r.BoardScrewDiameter)
		if err != nil {
			return nil, err
		}
		lid = csg.Union(lid, csg.Translate(boss, mp.Pos.X, mp.Pos.Y, -r.DisplayStandoffHeight))
	}

	return lid, nil
}
