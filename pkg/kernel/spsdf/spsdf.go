// Package spsdf implements the kernel.Kernel interface using the
// github.com/soypat/sdf CAD library. It is a pure-Go alternative to the
// sdfx backend with the same semantics; the two are interchangeable
// behind kernel.Kernel.
package spsdf

import (
	"math"

	"github.com/chazu/stompcase/pkg/kernel"
	"github.com/soypat/sdf"
	form3 "github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compile-time interface checks.
var (
	_ kernel.Kernel = (*Kernel)(nil)
	_ sdf.SDF3      = (*wedgeSDF)(nil)
)

// Kernel implements kernel.Kernel using soypat/sdf.
type Kernel struct{}

// New returns a new soypat/sdf backed kernel.
func New() *Kernel {
	return &Kernel{}
}

// solid wraps an sdf.SDF3 to implement kernel.Solid.
type solid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *solid) BoundingBox() (min, max [3]float64) {
	bb := s.s.Bounds()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*solid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &solid{s: s}
}

// Box creates a box with its minimum corner at the origin.
// must3.Box centers the box, so shift by half-dimensions.
func (k *Kernel) Box(x, y, z float64) kernel.Solid {
	s := form3.Box(r3.Vec{X: x, Y: y, Z: z}, 0)
	m := sdf.Translate3D(r3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m))
}

// RoundedBox creates a box with rounded edges, minimum corner at the origin.
func (k *Kernel) RoundedBox(x, y, z, round float64) kernel.Solid {
	s := form3.Box(r3.Vec{X: x, Y: y, Z: z}, round)
	m := sdf.Translate3D(r3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m))
}

// Cylinder creates a cylinder centered at the origin, axis along z.
func (k *Kernel) Cylinder(height, radius float64) kernel.Solid {
	return wrap(form3.Cylinder(height, radius, 0))
}

// Cone creates a truncated cone centered at the origin, axis along z.
func (k *Kernel) Cone(height, rBottom, rTop float64) kernel.Solid {
	return wrap(form3.Cone(height, rBottom, rTop, 0))
}

// wedgeSDF mirrors the sdfx backend's closed-form tapered prism field.
type wedgeSDF struct {
	width, depth float64
	low, high    float64
	round        float64
	tan, cos     float64
}

// Evaluate returns the signed distance to the wedge, negative inside.
func (w *wedgeSDF) Evaluate(p r3.Vec) float64 {
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

// Bounds returns the bounding box of the wedge.
func (w *wedgeSDF) Bounds() r3.Box {
	return r3.Box{
		Min: r3.Vec{X: 0, Y: 0, Z: 0},
		Max: r3.Vec{X: w.width, Y: w.depth, Z: math.Max(w.low, w.high)},
	}
}

// Wedge creates a tapered rounded-rectangle prism with its minimum corner
// at the origin, roof rising from lowHeight at y=0 to highHeight at y=depth.
func (k *Kernel) Wedge(width, depth, lowHeight, highHeight, round float64) kernel.Solid {
	if width <= 0 || depth <= 0 || lowHeight <= 0 || highHeight <= 0 {
		panic("spsdf.Wedge: non-positive dimension")
	}
	if round < 0 || 2*round > width || 2*round > depth {
		panic("spsdf.Wedge: corner radius does not fit footprint")
	}
	rise := highHeight - lowHeight
	return wrap(&wedgeSDF{
		width: width,
		depth: depth,
		low:   lowHeight,
		high:  highHeight,
		round: round,
		tan:   rise / depth,
		cos:   depth / math.Hypot(depth, rise),
	})
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3D(r3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Cut clips a solid by the plane through (px,py,pz) with normal (nx,ny,nz).
// The side the normal points into remains.
func (k *Kernel) Cut(s kernel.Solid, px, py, pz, nx, ny, nz float64) kernel.Solid {
	return wrap(sdf.Cut3D(unwrap(s), r3.Vec{X: px, Y: py, Z: pz}, r3.Vec{X: nx, Y: ny, Z: nz}))
}

// Distance returns the signed distance from a point to the solid's surface.
func (k *Kernel) Distance(s kernel.Solid, x, y, z float64) float64 {
	return unwrap(s).Evaluate(r3.Vec{X: x, Y: y, Z: z})
}

// ToMesh converts a solid to a triangle mesh using octree marching cubes.
func (k *Kernel) ToMesh(s kernel.Solid, opts kernel.MeshOptions) (*kernel.Mesh, error) {
	triangles, err := render.RenderAll(render.NewOctreeRenderer(unwrap(s), opts.CellsOrDefault()))
	if err != nil {
		return nil, err
	}

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
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
