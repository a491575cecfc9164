// Package csg defines an immutable constructive solid geometry expression
// tree. Builders assemble trees from primitives and boolean operations;
// Evaluate lowers a tree onto a kernel.Kernel backend. Trees are plain
// values with no kernel state, so the same tree can be evaluated on any
// backend and geometry construction stays separate from field evaluation.
package csg

import "gonum.org/v1/gonum/spatial/r3"

// Kind enumerates the node kinds of the expression tree.
type Kind int

const (
	KindPrimitive Kind = iota
	KindTransform
	KindUnion
	KindDifference
	KindIntersection
	KindHull
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindTransform:
		return "transform"
	case KindUnion:
		return "union"
	case KindDifference:
		return "difference"
	case KindIntersection:
		return "intersection"
	case KindHull:
		return "hull"
	default:
		return "unknown"
	}
}

// Solid is a node in the expression tree. Solids are immutable once built;
// constructors are the only way to make them.
type Solid struct {
	kind Kind
	prim primData // set when kind == KindPrimitive
	xfm  transformData
	args []*Solid
}

// Kind returns the node kind.
func (s *Solid) Kind() Kind {
	return s.kind
}

// Args returns the child nodes. Callers must not modify the slice.
func (s *Solid) Args() []*Solid {
	return s.args
}

// primData is the interface for primitive-specific payloads.
type primData interface {
	primData() // marker method restricting implementations to this package
}

type boxData struct {
	x, y, z float64
}

func (boxData) primData() {}

type roundedBoxData struct {
	x, y, z, round float64
}

func (roundedBoxData) primData() {}

type cylinderData struct {
	height, radius float64
}

func (cylinderData) primData() {}

type coneData struct {
	height, rBottom, rTop float64
}

func (coneData) primData() {}

// halfSpaceData is the set {p : n.(p - point) <= 0}. Half-spaces are
// unbounded, so they are only legal as the second operand of an
// intersection or difference, where they lower to a planar cut.
type halfSpaceData struct {
	point  r3.Vec
	normal r3.Vec
}

func (halfSpaceData) primData() {}

// transformData carries the translation and rotation of a transform node.
// Rotation is Euler angles in degrees, applied X then Y then Z.
type transformData struct {
	translate r3.Vec
	rotate    r3.Vec
}

func prim(d primData) *Solid {
	return &Solid{kind: KindPrimitive, prim: d}
}

// Box is an axis-aligned box with its minimum corner at the origin.
func Box(x, y, z float64) *Solid {
	return prim(boxData{x: x, y: y, z: z})
}

// RoundedBox is a box with rounded edges, minimum corner at the origin.
func RoundedBox(x, y, z, round float64) *Solid {
	return prim(roundedBoxData{x: x, y: y, z: z, round: round})
}

// Cylinder is centered at the origin with its axis along z.
func Cylinder(height, radius float64) *Solid {
	return prim(cylinderData{height: height, radius: radius})
}

// Cone is a truncated cone centered at the origin, axis along z, radius
// rBottom at -height/2 and rTop at +height/2.
func Cone(height, rBottom, rTop float64) *Solid {
	return prim(coneData{height: height, rBottom: rBottom, rTop: rTop})
}

// HalfSpace is the unbounded region behind the plane through point with
// outward normal n: {p : n.(p - point) <= 0}. Intersecting a solid with a
// half-space trims it to the side the normal points away from;
// differencing removes that side.
func HalfSpace(point, n r3.Vec) *Solid {
	return prim(halfSpaceData{point: point, normal: n})
}

// Translate moves a solid by (x, y, z).
func Translate(s *Solid, x, y, z float64) *Solid {
	return &Solid{
		kind: KindTransform,
		xfm:  transformData{translate: r3.Vec{X: x, Y: y, Z: z}},
		args: []*Solid{s},
	}
}

// Rotate rotates a solid by Euler angles in degrees around X, Y, Z.
func Rotate(s *Solid, x, y, z float64) *Solid {
	return &Solid{
		kind: KindTransform,
		xfm:  transformData{rotate: r3.Vec{X: x, Y: y, Z: z}},
		args: []*Solid{s},
	}
}

// Union combines one or more solids.
func Union(first *Solid, rest ...*Solid) *Solid {
	if len(rest) == 0 {
		return first
	}
	args := make([]*Solid, 0, 1+len(rest))
	args = append(args, first)
	args = append(args, rest...)
	return &Solid{kind: KindUnion, args: args}
}

// Difference removes each of rest from first.
func Difference(first *Solid, rest ...*Solid) *Solid {
	if len(rest) == 0 {
		return first
	}
	args := make([]*Solid, 0, 1+len(rest))
	args = append(args, first)
	args = append(args, rest...)
	return &Solid{kind: KindDifference, args: args}
}

// Intersect keeps only the region common to all solids.
func Intersect(first *Solid, rest ...*Solid) *Solid {
	if len(rest) == 0 {
		return first
	}
	args := make([]*Solid, 0, 1+len(rest))
	args = append(args, first)
	args = append(args, rest...)
	return &Solid{kind: KindIntersection, args: args}
}

// Hull is the convex hull of its operands. Evaluation supports the corner
// post form only: four translated vertical cylinders of equal radius whose
// bases sit on z=0, centered on the corners of an axis-aligned rectangle,
// with equal heights within each y row. That form lowers to a closed-form
// tapered prism; any other operand set is an evaluation error.
func Hull(solids ...*Solid) *Solid {
	return &Solid{kind: KindHull, args: solids}
}
