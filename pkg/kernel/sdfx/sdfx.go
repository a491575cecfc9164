// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/stompcase/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a box with the given dimensions. The resulting solid has its
// minimum corner at the origin (0,0,0) so that placement translations work
// intuitively. sdf.Box3D centers the box at the origin, so we translate by
// half-dimensions.
func (k *SdfxKernel) Box(x, y, z float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	// Shift from center-origin to min-corner-origin.
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m))
}

// RoundedBox creates a box with rounded edges, minimum corner at the origin.
func (k *SdfxKernel) RoundedBox(x, y, z, round float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, round)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m))
}

// Cylinder creates a cylinder centered at the origin, axis along z.
func (k *SdfxKernel) Cylinder(height, radius float64) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	return wrap(s)
}

// Cone creates a truncated cone centered at the origin, axis along z,
// radius rBottom at -height/2 and rTop at +height/2.
func (k *SdfxKernel) Cone(height, rBottom, rTop float64) kernel.Solid {
	s, err := sdf.Cone3D(height, rBottom, rTop, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cone3D: %v", err))
	}
	return wrap(s)
}

// wedgeSDF is the closed-form signed distance field for a tapered
// rounded-rectangle prism: rounded-rect footprint width×depth with corner
// radius round, flat floor on z=0, and a roof plane rising from lowHeight
// at y=0 to highHeight at y=depth. The roof term is scaled by cos of the
// taper angle so it is a true plane distance.
type wedgeSDF struct {
	width, depth float64
	low, high    float64
	round        float64
	tan, cos     float64
}

func newWedgeSDF(width, depth, low, high, round float64) *wedgeSDF {
	rise := high - low
	return &wedgeSDF{
		width: width,
		depth: depth,
		low:   low,
		high:  high,
		round: round,
		tan:   rise / depth,
		cos:   depth / math.Hypot(depth, rise),
	}
}

// Evaluate returns the signed distance to the wedge, negative inside.
func (w *wedgeSDF) Evaluate(p v3.Vec) float64 {
	// Rounded-rectangle footprint distance in the centered frame.
	qx := math.Abs(p.X-w.width/2) - (w.width/2 - w.round)
	qy := math.Abs(p.Y-w.depth/2) - (w.depth/2 - w.round)
	var d2 float64
	if qx > 0 || qy > 0 {
		d2 = math.Hypot(math.Max(qx, 0), math.Max(qy, 0)) - w.round
	} else {
		d2 = math.Max(qx, qy) - w.round
	}
	roof := (p.Z - w.low - p.Y*w.tan) * w.cos
	floor := -p.Z
	return math.Max(d2, math.Max(roof, floor))
}

// BoundingBox returns the bounding box of the wedge.
func (w *wedgeSDF) BoundingBox() sdf.Box3 {
	return sdf.Box3{
		Min: v3.Vec{X: 0, Y: 0, Z: 0},
		Max: v3.Vec{X: w.width, Y: w.depth, Z: math.Max(w.low, w.high)},
	}
}

// Wedge creates a tapered rounded-rectangle prism with its minimum corner
// at the origin. The roof tilts linearly from lowHeight at y=0 to
// highHeight at y=depth; equal heights give an extruded rounded rectangle.
func (k *SdfxKernel) Wedge(width, depth, lowHeight, highHeight, round float64) kernel.Solid {
	if width <= 0 || depth <= 0 || lowHeight <= 0 || highHeight <= 0 {
		panic(fmt.Sprintf("sdfx.Wedge: non-positive dimension %g %g %g %g",
			width, depth, lowHeight, highHeight))
	}
	if round < 0 || 2*round > width || 2*round > depth {
		panic(fmt.Sprintf("sdfx.Wedge: corner radius %g does not fit %gx%g footprint",
			round, width, depth))
	}
	return wrap(newWedgeSDF(width, depth, lowHeight, highHeight, round))
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *SdfxKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Cut clips a solid by the plane through (px,py,pz) with normal (nx,ny,nz).
// The side the normal points into remains.
func (k *SdfxKernel) Cut(s kernel.Solid, px, py, pz, nx, ny, nz float64) kernel.Solid {
	return wrap(sdf.Cut3D(unwrap(s), v3.Vec{X: px, Y: py, Z: pz}, v3.Vec{X: nx, Y: ny, Z: nz}))
}

// Distance returns the signed distance from a point to the solid's surface.
func (k *SdfxKernel) Distance(s kernel.Solid, x, y, z float64) float64 {
	return unwrap(s).Evaluate(v3.Vec{X: x, Y: y, Z: z})
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid, opts kernel.MeshOptions) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(opts.CellsOrDefault())
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
