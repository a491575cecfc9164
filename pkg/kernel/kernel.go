// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, spsdf) provide solid modeling and boolean
// operations behind this interface. The kernel abstraction allows
// swapping backends without changing the rest of the system.
package kernel

// DefaultMeshCells is the tessellation resolution used when
// MeshOptions.Cells is zero.
const DefaultMeshCells = 200

// MeshOptions controls tessellation of a solid into triangles.
// Cells is the number of marching-cubes cells along the longest
// bounding box axis; higher values give finer surfaces.
type MeshOptions struct {
	Cells int
}

// CellsOrDefault returns o.Cells, or DefaultMeshCells when unset.
func (o MeshOptions) CellsOrDefault() int {
	if o.Cells <= 0 {
		return DefaultMeshCells
	}
	return o.Cells
}

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
//
// Placement conventions: Box, RoundedBox and Wedge stand on the origin
// with their minimum corner at (0,0,0) so that placement translations
// work intuitively. Cylinder and Cone are centered at the origin with
// their axis along z, matching the underlying SDF libraries.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	RoundedBox(x, y, z, round float64) Solid
	Cylinder(height, radius float64) Solid
	Cone(height, rBottom, rTop float64) Solid
	// Wedge is a rounded-rectangle prism whose flat roof tilts linearly
	// from lowHeight at y=0 to highHeight at y=depth. With equal heights
	// it degenerates to an extruded rounded rectangle.
	Wedge(width, depth, lowHeight, highHeight, round float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Cut clips s by the plane through (px,py,pz) with normal
	// (nx,ny,nz). The side the normal points into remains.
	Cut(s Solid, px, py, pz, nx, ny, nz float64) Solid

	// Distance returns the signed distance from the point to the
	// solid's surface, negative inside. Used for geometric property
	// checks that meshing cannot answer directly.
	Distance(s Solid, x, y, z float64) float64

	// Mesh output
	ToMesh(s Solid, opts MeshOptions) (*Mesh, error)
}
