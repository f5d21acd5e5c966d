package mesh

import (
	"fmt"
	"sort"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/lattice"
	"github.com/latticeforge/automesh/vec3"
	"github.com/latticeforge/automesh/voxel"
)

// AffineTransform is the user-supplied scale/translate applied to
// lattice-corner coordinates when materializing node positions.
type AffineTransform struct {
	Scale     vec3.Vec
	Translate vec3.Vec
}

// DefaultTransform is scale=(1,1,1), translate=(0,0,0).
func DefaultTransform() AffineTransform {
	return AffineTransform{Scale: vec3.Vec{X: 1, Y: 1, Z: 1}}
}

// rawElement is an emitted-but-not-yet-compacted hex: its label and the
// 8 original lattice node ids in the fixed winding.
type rawElement struct {
	label uint32
	nodes [8]uint32
}

// Build runs the voxel-to-mesh algorithm of spec.md §4.2: collect, group,
// compact, materialize. include selects which material labels become
// elements; any label in include that never appears in g is
// automesherr.ErrUnknownLabel. A grid where no voxel survives inclusion
// is automesherr.ErrEmptyMesh.
func Build(g *voxel.Grid, include map[uint32]bool, xform AffineTransform) (*Mesh, error) {
	if !xform.Scale.IsFinite() || !xform.Translate.IsFinite() {
		return nil, fmt.Errorf("%w: scale/translate must be finite", automesherr.ErrBadParameter)
	}
	if include[0] {
		return nil, fmt.Errorf("%w: label 0 is reserved and cannot be included", automesherr.ErrBadParameter)
	}

	nx, ny, nz := g.Shape()

	present := make(map[uint32]bool)
	var raw []rawElement

	// 1. Collect, in lex (iz,iy,ix) order, x fastest.
	var collectErr error
	g.Each(func(ix, iy, iz int, label uint32) {
		if collectErr != nil || !include[label] {
			return
		}
		present[label] = true
		corners, err := lattice.VoxelCorners(ix, iy, iz, nx, ny, nz)
		if err != nil {
			collectErr = err
			return
		}
		raw = append(raw, rawElement{label: label, nodes: corners})
	})
	if collectErr != nil {
		return nil, collectErr
	}

	for label := range include {
		if !present[label] {
			return nil, fmt.Errorf("%w: label %d not present in grid", automesherr.ErrUnknownLabel, label)
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no voxel survived inclusion", automesherr.ErrEmptyMesh)
	}

	// 2. Group by ascending label, preserving emission (lex voxel) order
	// within each label.
	labels := make([]uint32, 0, len(present))
	for l := range present {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	byLabel := make(map[uint32][]rawElement, len(labels))
	for _, re := range raw {
		byLabel[re.label] = append(byLabel[re.label], re)
	}

	// 3. Compact nodes: sorted set of referenced original lattice ids,
	// assigned new ids 1..|U| in ascending original-id order.
	referenced := make(map[uint32]bool)
	for _, re := range raw {
		for _, n := range re.nodes {
			referenced[n] = true
		}
	}
	originalIDs := make([]uint32, 0, len(referenced))
	for id := range referenced {
		originalIDs = append(originalIDs, id)
	}
	sort.Slice(originalIDs, func(i, j int) bool { return originalIDs[i] < originalIDs[j] })

	compact := make(map[uint32]uint32, len(originalIDs))
	for newID, oldID := range originalIDs {
		compact[oldID] = uint32(newID) + 1
	}

	// 4. Materialize coordinates in compacted order.
	coords := make([]vec3.Vec, len(originalIDs))
	for idx, oldID := range originalIDs {
		i, j, k, err := lattice.Coord(oldID, nx, ny, nz)
		if err != nil {
			return nil, err
		}
		coords[idx] = xform.Translate.Add(xform.Scale.MulElem(vec3.FromIJK(i, j, k)))
	}

	blocks := make([]Block, 0, len(labels))
	for _, label := range labels {
		elements := make([]Element, len(byLabel[label]))
		for i, re := range byLabel[label] {
			var el Element
			for n, oldID := range re.nodes {
				el.Nodes[n] = compact[oldID]
			}
			elements[i] = el
		}
		blocks = append(blocks, Block{Label: label, Elements: elements})
	}

	return &Mesh{Blocks: blocks, Coordinates: coords}, nil
}
