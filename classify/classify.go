// Package classify assigns each mesh node one of three hierarchical
// levels (INTERIOR, BOUNDARY, PRESCRIBED) that the smoothing package
// uses to restrict per-node neighbor participation.
package classify

import (
	"fmt"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/vec3"
)

// Level is a node's hierarchical constraint category.
type Level int

const (
	// Interior nodes are free to move using all neighbors.
	Interior Level = 0
	// Boundary nodes are free to move but only neighbors with
	// equal-or-higher level participate.
	Boundary Level = 1
	// Prescribed nodes have a fixed position and never move.
	Prescribed Level = 2
)

// Classifier holds the per-node level assignment and the coordinate
// overrides for every PRESCRIBED node.
type Classifier struct {
	hierarchy  []Level // hierarchy[id-1] is the level of node id
	prescribed map[uint32]vec3.Vec
}

// New validates and wraps a per-node hierarchy plus its prescribed
// coordinate side table. Fatal per spec.md §4.4 if the count of
// PRESCRIBED nodes does not equal len(prescribed), or if any
// prescribed key's level is not Prescribed.
func New(hierarchy []Level, prescribed map[uint32]vec3.Vec) (*Classifier, error) {
	nPrescribed := 0
	for _, l := range hierarchy {
		if l == Prescribed {
			nPrescribed++
		}
	}
	if nPrescribed != len(prescribed) {
		return nil, fmt.Errorf("%w: %d PRESCRIBED nodes but %d prescribed coordinates",
			automesherr.ErrClassificationMismatch, nPrescribed, len(prescribed))
	}
	for id := range prescribed {
		if int(id) < 1 || int(id) > len(hierarchy) {
			return nil, fmt.Errorf("%w: prescribed node id %d out of range", automesherr.ErrClassificationMismatch, id)
		}
		if hierarchy[id-1] != Prescribed {
			return nil, fmt.Errorf("%w: node %d has a prescribed coordinate but level %v",
				automesherr.ErrClassificationMismatch, id, hierarchy[id-1])
		}
	}
	cp := make(map[uint32]vec3.Vec, len(prescribed))
	for k, v := range prescribed {
		cp[k] = v
	}
	return &Classifier{hierarchy: append([]Level(nil), hierarchy...), prescribed: cp}, nil
}

// Uniform builds a Classifier where every node has the same level and
// there are no prescribed nodes. level must not be Prescribed.
func Uniform(nodeCount int, level Level) (*Classifier, error) {
	h := make([]Level, nodeCount)
	for i := range h {
		h[i] = level
	}
	return New(h, nil)
}

// Level returns the hierarchical level of node id (1-based).
func (c *Classifier) Level(id uint32) Level {
	return c.hierarchy[id-1]
}

// PrescribedTarget returns the declared target coordinate for a
// PRESCRIBED node and whether one is recorded.
func (c *Classifier) PrescribedTarget(id uint32) (vec3.Vec, bool) {
	v, ok := c.prescribed[id]
	return v, ok
}

// NodeCount returns the number of nodes the classifier covers.
func (c *Classifier) NodeCount() int {
	return len(c.hierarchy)
}

func (l Level) String() string {
	switch l {
	case Interior:
		return "INTERIOR"
	case Boundary:
		return "BOUNDARY"
	case Prescribed:
		return "PRESCRIBED"
	default:
		return "UNKNOWN"
	}
}
