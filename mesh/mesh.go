// Package mesh holds the conforming hexahedral mesh data model (Element,
// Block, Mesh), the builder that produces one from a voxel grid, and the
// edge-pair derivation used by visualization collaborators and tests.
package mesh

import (
	"fmt"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/vec3"
)

// Element is one hexahedron: its 8 final (compacted) node identifiers,
// in the fixed §3 winding. The block label is held by the enclosing Block.
type Element struct {
	Nodes [8]uint32
}

// Block groups the elements sharing a single, strictly positive label.
type Block struct {
	Label    uint32
	Elements []Element
}

// Mesh is the final (blocks, coordinates) pair: blocks ordered by
// ascending label, and a 1-indexed node-id -> coordinate table.
type Mesh struct {
	Blocks      []Block
	Coordinates []vec3.Vec // Coordinates[id-1] is the position of node id
}

// NodeCount returns the number of distinct, contiguously-numbered nodes.
func (m *Mesh) NodeCount() int {
	return len(m.Coordinates)
}

// Coordinate returns the physical position of node id (1-based).
func (m *Mesh) Coordinate(id uint32) vec3.Vec {
	return m.Coordinates[id-1]
}

// SetCoordinate overwrites the physical position of node id (1-based).
// Used by the smoothing package between iterations.
func (m *Mesh) SetCoordinate(id uint32, v vec3.Vec) {
	m.Coordinates[id-1] = v
}

// Elements returns every element across every block, in block order.
func (m *Mesh) Elements() []Element {
	var all []Element
	for _, b := range m.Blocks {
		all = append(all, b.Elements...)
	}
	return all
}

// Validate checks invariants I1-I2 and I4 of spec.md §3: every node id
// referenced by an element lies within range, the referenced id set is
// exactly {1..NodeCount} with no gaps, and block labels are unique and
// strictly positive. Conformity (I3) is a structural guarantee of the
// builder's compaction step and is exercised by tests rather than
// re-checked at runtime.
func (m *Mesh) Validate() error {
	seenLabels := make(map[uint32]bool)
	referenced := make([]bool, m.NodeCount())
	for _, b := range m.Blocks {
		if b.Label == 0 {
			return fmt.Errorf("%w: block label 0 is reserved", automesherr.ErrInputShape)
		}
		if seenLabels[b.Label] {
			return fmt.Errorf("%w: duplicate block label %d", automesherr.ErrInputShape, b.Label)
		}
		seenLabels[b.Label] = true
		for _, el := range b.Elements {
			for _, n := range el.Nodes {
				if n < 1 || int(n) > m.NodeCount() {
					return fmt.Errorf("%w: node id %d outside [1,%d]", automesherr.ErrInputShape, n, m.NodeCount())
				}
				referenced[n-1] = true
			}
		}
	}
	for i, seen := range referenced {
		if !seen {
			return fmt.Errorf("%w: node id %d is never referenced", automesherr.ErrInputShape, i+1)
		}
	}
	return nil
}
