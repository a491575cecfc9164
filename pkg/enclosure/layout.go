package enclosure

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MountPoint is a screw hole position in some 2D frame, with its bore
// diameter and whether the mouth gets a countersink.
type MountPoint struct {
	Pos         r2.Vec
	Diameter    float64
	Countersunk bool
}

// cornerBossOffset keeps corner bosses clear of the rounded footprint.
func (r *Resolved) cornerBossOffset() float64 {
	return math.Max(r.BossDiameter/2, r.CornerRadius)
}

// pillarBodyY is the body-frame y of the inter-column pillars: the lid-frame
// midpoint between the two switch rows, projected back onto the floor plan.
func (r *Resolved) pillarBodyY() float64 {
	return r.CosSlant * (r.RowOffsetA + r.RowOffsetB) / 2
}

// SwitchColumnX returns the lid/body x of footswitch column i.
func (r *Resolved) SwitchColumnX(i int) float64 {
	return r.EdgeMargin + float64(i)*r.SwitchSpacing
}

// MountPoints returns the lid-to-body screw positions in the body's floor
// frame: the four corner bosses plus one pillar between each adjacent pair
// of switch columns. With a single column there are no inter-column pillars.
func (r *Resolved) MountPoints() []MountPoint {
	bOff := r.cornerBossOffset()
	pts := []MountPoint{
		{Pos: r2.Vec{X: bOff, Y: bOff}},
		{Pos: r2.Vec{X: r.Width - bOff, Y: bOff}},
		{Pos: r2.Vec{X: bOff, Y: r.Depth - bOff}},
		{Pos: r2.Vec{X: r.Width - bOff, Y: r.Depth - bOff}},
	}
	py := r.pillarBodyY()
	for i := 0; i < r.SwitchesPerRow-1; i++ {
		x := r.EdgeMargin + (float64(i)+0.5)*r.SwitchSpacing
		pts = append(pts, MountPoint{Pos: r2.Vec{X: x, Y: py}})
	}
	for i := range pts {
		pts[i].Diameter = r.ScrewHoleDiameter
		pts[i].Countersunk = true
	}
	return pts
}

// LidMounts projects MountPoints into the lid's flat frame. The lid is the
// hypotenuse face of the taper, so equal true distances along the slant are
// longer in lid coordinates: lidY = bodyY / cos(slantAngle).
func (r *Resolved) LidMounts() []MountPoint {
	pts := r.MountPoints()
	for i := range pts {
		pts[i].Pos.Y /= r.CosSlant
	}
	return pts
}

// boltPattern returns the four corners of a rectangle centered at c with
// the given half-spacings.
func boltPattern(c r2.Vec, halfX, halfY float64) []r2.Vec {
	return []r2.Vec{
		{X: c.X - halfX, Y: c.Y - halfY},
		{X: c.X + halfX, Y: c.Y - halfY},
		{X: c.X - halfX, Y: c.Y + halfY},
		{X: c.X + halfX, Y: c.Y + halfY},
	}
}

// boardPattern is one internal board's standoff layout on the floor.
type boardPattern struct {
	name    string
	centers []r2.Vec
}

// boardPatterns places the three board bolt patterns relative to the
// footprint center.
func (r *Resolved) boardPatterns() []boardPattern {
	center := r2.Vec{X: r.Width / 2, Y: r.Depth / 2}
	return []boardPattern{
		{"pi board", boltPattern(r2.Add(center, r.PiBoardOffset), piHalfSpanX, piHalfSpanY)},
		{"board a", boltPattern(r2.Add(center, r.BoardAOffset), genericHalfSpanX, genericHalfSpanY)},
		{"board b", boltPattern(r2.Add(center, r.BoardBOffset), genericHalfSpanX, genericHalfSpanY)},
	}
}

// DisplayCenter returns the display center in the lid frame.
func (r *Resolved) DisplayCenter() r2.Vec {
	return r2.Vec{X: r.Width / 2, Y: r.LidLength/2 + r.DisplayOffsetY}
}

// DisplayMounts returns the display's four external mounting holes in the
// lid frame.
func (r *Resolved) DisplayMounts() []MountPoint {
	corners := boltPattern(r.DisplayCenter(), r.DisplayMountWidth/2, r.DisplayMountHeight/2)
	pts := make([]MountPoint, 0, len(corners))
	for _, c := range corners {
		pts = append(pts, MountPoint{Pos: c, Diameter: r.BoardScrewDiameter, Countersunk: true})
	}
	return pts
}
