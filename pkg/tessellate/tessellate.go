// Package tessellate turns an assembled scene into triangle meshes using a
// geometry kernel. One mesh is produced per scene part.
package tessellate

import (
	"fmt"

	"github.com/chazu/stompcase/pkg/csg"
	"github.com/chazu/stompcase/pkg/enclosure"
	"github.com/chazu/stompcase/pkg/kernel"
)

// Tessellate evaluates every part of the scene on the kernel, applies the
// part's scene offset and meshes it at the requested resolution. The scene
// is read-only and never mutated.
func Tessellate(scene *enclosure.Scene, k kernel.Kernel, opts kernel.MeshOptions) ([]*kernel.Mesh, error) {
	if scene == nil {
		return nil, nil
	}

	meshes := make([]*kernel.Mesh, 0, len(scene.Parts))
	for _, part := range scene.Parts {
		solid, err := csg.Evaluate(part.Solid, k)
		if err != nil {
			return nil, fmt.Errorf("tessellate: evaluating %q: %w", part.Name, err)
		}
		if off := part.Offset; off.X != 0 || off.Y != 0 || off.Z != 0 {
			solid = k.Translate(solid, off.X, off.Y, off.Z)
		}

		mesh, err := k.ToMesh(solid, opts)
		if err != nil {
			return nil, fmt.Errorf("tessellate: meshing %q: %w", part.Name, err)
		}
		mesh.PartName = part.Name
		meshes = append(meshes, mesh)
	}

	return meshes, nil
}
