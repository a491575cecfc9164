package enclosure

import "github.com/chazu/stompcase/pkg/csg"

// pierce is the overshoot applied to through-cuts so booleans never leave
// coplanar skins.
const pierce = 1.0

// Wedge is the housing's core primitive: the convex hull of four vertical
// corner cylinders of radius r standing on z=0 at the inset corners of a
// w x d rectangle, the front pair extruded to hLow and the rear pair to
// hHigh. The hull gives a rounded-rectangle footprint and a linearly
// tapering roof without modeling the slanted face directly.
func Wedge(w, d, hLow, hHigh, r float64) *csg.Solid {
	post := func(x, y, h float64) *csg.Solid {
		return csg.Translate(csg.Cylinder(h, r), x, y, h/2)
	}
	return csg.Hull(
		post(r, r, hLow),
		post(w-r, r, hLow),
		post(r, d-r, hHigh),
		post(w-r, d-r, hHigh),
	)
}

// Boss is a screw standoff: a cylinder of height h and outer diameter
// dOuter with a concentric through-bore of diameter dInner, standing on
// the local origin.
func Boss(h, dOuter, dInner float64) (*csg.Solid, error) {
	if dInner >= dOuter {
		return nil, geomErr("boss", "bore diameter %g >= outer diameter %g", dInner, dOuter)
	}
	outer := csg.Translate(csg.Cylinder(h, dOuter/2), 0, 0, h/2)
	bore := csg.Translate(csg.Cylinder(h+2*pierce, dInner/2), 0, 0, h/2)
	return csg.Difference(outer, bore), nil
}
