package enclosure

import (
	"math"

	"github.com/chazu/stompcase/pkg/csg"
	"gonum.org/v1/gonum/spatial/r3"
)

// cavityMargin extends the cavity heights so its roof always clears the
// envelope roof before the seating trim.
const cavityMargin = 10.0

// seatingPlane returns the seating plane's anchor point and upward normal.
// The plane passes through (0, 0, LowHeight) tilted by the slant angle
// about the x axis.
func (r *Resolved) seatingPlane() (point, normal r3.Vec) {
	point = r3.Vec{X: 0, Y: 0, Z: r.LowHeight}
	normal = r3.Vec{X: 0, Y: -r.SinSlant, Z: r.CosSlant}
	return point, normal
}

// Body composes the enclosure body: the hollowed wedge envelope with rear
// port cutouts, the slanted top trim and lip recess, internal screw pillars
// clipped to the seating plane, and the three board standoff patterns.
func Body(r *Resolved) (*csg.Solid, error) {
	t := r.ShellThickness
	envelope := Wedge(r.Width, r.Depth, r.LowHeight, r.HighHeight, r.CornerRadius)

	// Hollow out the interior with a uniform wall on all five faces.
	cavityW := r.Width - 2*t
	cavityD := r.Depth - 2*t
	if cavityW <= 0 || cavityD <= 0 {
		return nil, geomErr("cavity", "shell inset collapses footprint to %g x %g", cavityW, cavityD)
	}
	cavityR := math.Max(r.CornerRadius-t, 1)
	cavity := csg.Translate(
		Wedge(cavityW, cavityD, r.LowHeight+cavityMargin, r.HighHeight+cavityMargin, cavityR),
		t, t, t)
	shell := csg.Difference(envelope, cavity)

	// Rear ports pierce the back wall at half the mean wall height. The
	// full bore must land on the wall, between the floor and the lip shelf
	// at the rear.
	portZ := (r.LowHeight + r.HighHeight) / 4
	portHalf := math.Max(r.DCJackDiameter, r.USBSlotHeight) / 2
	shelfAtRear := r.HighHeight - r.LipDepth/r.CosSlant
	if portZ-portHalf < t || portZ+portHalf > shelfAtRear {
		return nil, geomErr("rear ports",
			"port spanning z %g to %g misses the back wall (floor %g, shelf %g)",
			portZ-portHalf, portZ+portHalf, t, shelfAtRear)
	}
	dcJack := csg.Translate(
		csg.Rotate(csg.Cylinder(4*t, r.DCJackDiameter/2), 90, 0, 0),
		r.Width/4, r.Depth, portZ)
	usbRound := 0.45 * math.Min(r.USBSlotWidth, r.USBSlotHeight)
	usbSlot := csg.Translate(
		csg.RoundedBox(r.USBSlotWidth, 4*t, r.USBSlotHeight, usbRound),
		3*r.Width/4-r.USBSlotWidth/2, r.Depth-2*t, portZ-r.USBSlotHeight/2)
	shell = csg.Difference(shell, dcJack, usbSlot)

	// Trim everything above the lid's seating plane so the walls follow the
	// taper instead of stair-stepping.
	seatPoint, seatNormal := r.seatingPlane()
	seat := csg.HalfSpace(seatPoint, seatNormal)
	shell = csg.Intersect(shell, seat)

	// Lip recess: a parallel plane LipDepth below the seating plane, applied
	// only inside the LipWidth rim, leaves a stepped shelf for registration.
	rimW := r.Width - 2*r.LipWidth
	rimD := r.Depth - 2*r.LipWidth
	if rimW <= 0 || rimD <= 0 || r.LipWidth >= t {
		return nil, geomErr("lip", "lip width %g leaves no rim on a %g wall", r.LipWidth, t)
	}
	shelfPoint := r3.Vec{
		X: 0,
		Y: r.LipDepth * r.SinSlant,
		Z: r.LowHeight - r.LipDepth*r.CosSlant,
	}
	if shelfPoint.Z <= t {
		return nil, geomErr("lip", "lip depth %g cuts below the floor", r.LipDepth)
	}
	aboveShelf := csg.HalfSpace(shelfPoint, r3.Scale(-1, seatNormal))
	lipCut := csg.Intersect(
		csg.Translate(csg.Box(rimW, rimD, r.HighHeight+cavityMargin), r.LipWidth, r.LipWidth, 0),
		aboveShelf)
	shell = csg.Difference(shell, lipCut)

	// Screw pillars run full height, then get clipped to the seating plane
	// and the envelope so their tops land exactly where the lid seats.
	var pillars *csg.Solid
	for _, mp := range r.MountPoints() {
		boss, err := Boss(r.HighHeight, r.BossDiameter, mp.Diameter)
		if err != nil {
			return nil, err
		}
		placed := csg.Translate(boss, mp.Pos.X, mp.Pos.Y, 0)
		if pillars == nil {
			pillars = placed
		} else {
			pillars = csg.Union(pillars, placed)
		}
	}
	pillars = csg.Intersect(pillars, seat)
	pillars = csg.Intersect(pillars, envelope)

	standoffs, err := r.boardStandoffs()
	if err != nil {
		return nil, err
	}

	return csg.Union(shell, pillars, standoffs), nil
}

// boardStandoffs builds the three 4-hole board patterns as short bosses on
// the cavity floor.
func (r *Resolved) boardStandoffs() (*csg.Solid, error) {
	t := r.ShellThickness
	bossR := r.BossDiameter / 2

	var all *csg.Solid
	for _, pat := range r.boardPatterns() {
		for _, c := range pat.centers {
			if c.X-bossR < t || c.X+bossR > r.Width-t ||
				c.Y-bossR < t || c.Y+bossR > r.Depth-t {
				return nil, geomErr("board standoffs",
					"%s standoff at (%g, %g) leaves the cavity", pat.name, c.X, c.Y)
			}
			boss, err := Boss(r.BoardStandoffHeight, r.BossDiameter, r.BoardScrewDiameter)
			if err != nil {
				return nil, err
			}
			placed := csg.Translate(boss, c.X, c.Y, t)
			if all == nil {
				all = placed
			} else {
				all = csg.Union(all, placed)
			}
		}
	}
	return all, nil
}
