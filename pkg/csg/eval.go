package csg

import (
	"fmt"
	"math"

	"github.com/chazu/stompcase/pkg/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// zero vector for cheap "no rotation / no translation" checks
var r3Zero r3.Vec

// matching tolerance for hull corner post layouts
const evalEps = 1e-6

// Evaluate lowers an expression tree onto a kernel backend and returns the
// resulting solid. It fails on trees the backends cannot represent: a
// half-space anywhere but the second operand of an intersection or
// difference, or a hull whose operands are not a corner post layout.
func Evaluate(s *Solid, k kernel.Kernel) (kernel.Solid, error) {
	if s == nil {
		return nil, fmt.Errorf("csg: evaluate nil solid")
	}

	switch s.kind {
	case KindPrimitive:
		return evalPrimitive(s, k)

	case KindTransform:
		child, err := Evaluate(s.args[0], k)
		if err != nil {
			return nil, err
		}
		out := child
		if r := s.xfm.rotate; r != r3Zero {
			out = k.Rotate(out, r.X, r.Y, r.Z)
		}
		if t := s.xfm.translate; t != r3Zero {
			out = k.Translate(out, t.X, t.Y, t.Z)
		}
		return out, nil

	case KindUnion:
		acc, err := Evaluate(s.args[0], k)
		if err != nil {
			return nil, err
		}
		for _, arg := range s.args[1:] {
			next, err := Evaluate(arg, k)
			if err != nil {
				return nil, err
			}
			acc = k.Union(acc, next)
		}
		return acc, nil

	case KindDifference:
		acc, err := Evaluate(s.args[0], k)
		if err != nil {
			return nil, err
		}
		for _, arg := range s.args[1:] {
			if hs, ok := halfSpaceOf(arg); ok {
				// Removing a half-space keeps the side its normal points into.
				acc = k.Cut(acc, hs.point.X, hs.point.Y, hs.point.Z,
					hs.normal.X, hs.normal.Y, hs.normal.Z)
				continue
			}
			next, err := Evaluate(arg, k)
			if err != nil {
				return nil, err
			}
			acc = k.Difference(acc, next)
		}
		return acc, nil

	case KindIntersection:
		acc, err := Evaluate(s.args[0], k)
		if err != nil {
			return nil, err
		}
		for _, arg := range s.args[1:] {
			if hs, ok := halfSpaceOf(arg); ok {
				// Intersecting with a half-space keeps the side its normal
				// points away from.
				acc = k.Cut(acc, hs.point.X, hs.point.Y, hs.point.Z,
					-hs.normal.X, -hs.normal.Y, -hs.normal.Z)
				continue
			}
			next, err := Evaluate(arg, k)
			if err != nil {
				return nil, err
			}
			acc = k.Intersection(acc, next)
		}
		return acc, nil

	case KindHull:
		return evalHull(s, k)

	default:
		return nil, fmt.Errorf("csg: unknown node kind %v", s.kind)
	}
}

func evalPrimitive(s *Solid, k kernel.Kernel) (kernel.Solid, error) {
	switch d := s.prim.(type) {
	case boxData:
		return k.Box(d.x, d.y, d.z), nil
	case roundedBoxData:
		return k.RoundedBox(d.x, d.y, d.z, d.round), nil
	case cylinderData:
		return k.Cylinder(d.height, d.radius), nil
	case coneData:
		return k.Cone(d.height, d.rBottom, d.rTop), nil
	case halfSpaceData:
		return nil, fmt.Errorf("csg: half-space outside intersection or difference")
	default:
		return nil, fmt.Errorf("csg: unknown primitive payload %T", s.prim)
	}
}

// halfSpaceOf reports whether a node is a bare half-space primitive.
func halfSpaceOf(s *Solid) (halfSpaceData, bool) {
	if s.kind != KindPrimitive {
		return halfSpaceData{}, false
	}
	hs, ok := s.prim.(halfSpaceData)
	return hs, ok
}

// cornerPost is one hull operand decomposed into its cylinder placement.
type cornerPost struct {
	x, y   float64
	height float64
	radius float64
}

// evalHull lowers the corner post form of a hull: four equal-radius
// vertical cylinders standing on z=0 at the corners of an axis-aligned
// rectangle, with equal heights within each y row. The hull of that
// arrangement is a rounded-rectangle prism whose roof tilts linearly from
// the front row height to the back row height.
func evalHull(s *Solid, k kernel.Kernel) (kernel.Solid, error) {
	if len(s.args) != 4 {
		return nil, fmt.Errorf("csg: hull wants 4 corner posts, got %d", len(s.args))
	}

	posts := make([]cornerPost, 0, 4)
	for _, arg := range s.args {
		post, err := decomposePost(arg)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	r := posts[0].radius
	for _, p := range posts[1:] {
		if math.Abs(p.radius-r) > evalEps {
			return nil, fmt.Errorf("csg: hull corner posts have mixed radii %g and %g", r, p.radius)
		}
	}

	xMin, xMax := posts[0].x, posts[0].x
	yMin, yMax := posts[0].y, posts[0].y
	for _, p := range posts[1:] {
		xMin = math.Min(xMin, p.x)
		xMax = math.Max(xMax, p.x)
		yMin = math.Min(yMin, p.y)
		yMax = math.Max(yMax, p.y)
	}
	// A zero x span is legal: when the post radius reaches half the
	// footprint width the two posts of each row coincide and the footprint
	// degenerates to a stadium of width 2r. Coincident rows have no roof
	// direction and stay rejected.
	if yMax-yMin < evalEps {
		return nil, fmt.Errorf("csg: hull corner posts are collinear")
	}

	// Each post must sit on a rectangle corner, and the two posts sharing a
	// y row must share a height.
	var frontHeight, backHeight float64
	var frontSeen, backSeen int
	for _, p := range posts {
		onX := math.Abs(p.x-xMin) < evalEps || math.Abs(p.x-xMax) < evalEps
		front := math.Abs(p.y-yMin) < evalEps
		back := math.Abs(p.y-yMax) < evalEps
		if !onX || (!front && !back) {
			return nil, fmt.Errorf("csg: hull corner post at (%g, %g) is off the rectangle", p.x, p.y)
		}
		if front {
			if frontSeen > 0 && math.Abs(p.height-frontHeight) > evalEps {
				return nil, fmt.Errorf("csg: hull front posts have mixed heights %g and %g", frontHeight, p.height)
			}
			frontHeight = p.height
			frontSeen++
		} else {
			if backSeen > 0 && math.Abs(p.height-backHeight) > evalEps {
				return nil, fmt.Errorf("csg: hull back posts have mixed heights %g and %g", backHeight, p.height)
			}
			backHeight = p.height
			backSeen++
		}
	}
	if frontSeen != 2 || backSeen != 2 {
		return nil, fmt.Errorf("csg: hull posts are not paired front/back (%d front, %d back)", frontSeen, backSeen)
	}

	width := xMax - xMin + 2*r
	depth := yMax - yMin + 2*r
	wedge := k.Wedge(width, depth, frontHeight, backHeight, r)
	return k.Translate(wedge, xMin-r, yMin-r, 0), nil
}

// decomposePost unwraps Translate(Cylinder) and checks the cylinder base
// sits on z=0.
func decomposePost(s *Solid) (cornerPost, error) {
	if s.kind != KindTransform || s.xfm.rotate != r3Zero {
		return cornerPost{}, fmt.Errorf("csg: hull operand is not a translated cylinder")
	}
	child := s.args[0]
	if child.kind != KindPrimitive {
		return cornerPost{}, fmt.Errorf("csg: hull operand is not a translated cylinder")
	}
	cyl, ok := child.prim.(cylinderData)
	if !ok {
		return cornerPost{}, fmt.Errorf("csg: hull operand is not a cylinder, got %T", child.prim)
	}
	t := s.xfm.translate
	if math.Abs(t.Z-cyl.height/2) > evalEps {
		return cornerPost{}, fmt.Errorf("csg: hull cylinder base is at z=%g, want 0", t.Z-cyl.height/2)
	}
	return cornerPost{
		x:      t.X,
		y:      t.Y,
		height: cyl.height,
		radius: cyl.radius,
	}, nil
}
