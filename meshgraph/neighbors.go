// Package meshgraph builds the per-node neighbor graph of spec.md §4.3:
// for every node, the set of other nodes sharing at least one element
// edge. It is implemented atop github.com/katalvlaran/lvlath/core, the
// pack's graph library, rather than a hand-rolled adjacency map, so the
// dedup/symmetry guarantees of an undirected, loopless, multi-edge-free
// graph come from a real dependency instead of bespoke bookkeeping.
package meshgraph

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/core"

	"github.com/latticeforge/automesh/mesh"
)

// Graph is the final neighbor structure: for each node id, the sorted
// set of node ids it shares at least one hex edge with.
type Graph struct {
	g *core.Graph
}

// Build derives the neighbor graph from every element's 12 edges.
func Build(elements []mesh.Element, nodeCount int) *Graph {
	g := core.NewGraph() // undirected, unweighted, no loops, no multi-edges

	for id := 1; id <= nodeCount; id++ {
		// Vertices must exist even for isolated nodes so Neighbors()
		// returns an empty set rather than ErrVertexNotFound.
		_ = g.AddVertex(vertexID(uint32(id)))
	}

	for _, pair := range mesh.EdgePairs(elements) {
		a, b := vertexID(pair[0]), vertexID(pair[1])
		if !g.HasEdge(a, b) {
			_, _ = g.AddEdge(a, b, 0)
		}
	}

	return &Graph{g: g}
}

// Neighbors returns the sorted set of node ids adjacent to n.
func (ng *Graph) Neighbors(n uint32) []uint32 {
	ids, err := ng.g.NeighborIDs(vertexID(n))
	if err != nil {
		return nil
	}
	out := make([]uint32, len(ids))
	for i, s := range ids {
		v, _ := strconv.ParseUint(s, 10, 32)
		out[i] = uint32(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func vertexID(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}
