// Package smoothing implements hierarchical Laplace and Taubin mesh
// smoothing: iterative Jacobi-style coordinate updates constrained by a
// three-level node classification (INTERIOR/BOUNDARY/PRESCRIBED).
package smoothing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/classify"
	"github.com/latticeforge/automesh/mesh"
	"github.com/latticeforge/automesh/meshgraph"
	"github.com/latticeforge/automesh/vec3"
)

// Algorithm selects the smoothing variant.
type Algorithm int

const (
	// Laplace repeats a single weighted-centroid pass per iteration.
	Laplace Algorithm = iota
	// Taubin alternates a shrinking pass (Lambda) with an inflating
	// pass (Mu, negative) per iteration to counter Laplace shrinkage.
	Taubin
)

// Params configures a smoothing run.
type Params struct {
	Algorithm  Algorithm
	Lambda     float64 // positive step factor, both algorithms
	Mu         float64 // negative step factor, Taubin only
	Iterations int     // N >= 1
}

// Smooth mutates m.Coordinates in place for Params.Iterations
// iterations, using ng as the full neighbor graph and classifier to
// restrict each node's effective neighborhood. PRESCRIBED nodes are
// snapped to their declared target before the first iteration and
// never move thereafter.
func Smooth(m *mesh.Mesh, ng *meshgraph.Graph, classifier *classify.Classifier, params Params) error {
	if params.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", automesherr.ErrBadParameter, params.Iterations)
	}
	if params.Lambda <= 0 {
		return fmt.Errorf("%w: lambda must be positive, got %v", automesherr.ErrBadParameter, params.Lambda)
	}
	if params.Algorithm == Taubin && params.Mu >= 0 {
		return fmt.Errorf("%w: Taubin mu must be negative, got %v", automesherr.ErrBadParameter, params.Mu)
	}
	if classifier.NodeCount() != m.NodeCount() {
		return fmt.Errorf("%w: classifier covers %d nodes, mesh has %d",
			automesherr.ErrClassificationMismatch, classifier.NodeCount(), m.NodeCount())
	}

	n := m.NodeCount()
	for id := 1; id <= n; id++ {
		if classifier.Level(uint32(id)) == classify.Prescribed {
			if target, ok := classifier.PrescribedTarget(uint32(id)); ok {
				m.SetCoordinate(uint32(id), target)
			}
		}
	}

	effective := effectiveNeighborhoods(ng, classifier)

	for iter := 0; iter < params.Iterations; iter++ {
		laplacePass(m, effective, params.Lambda)
		if params.Algorithm == Taubin {
			laplacePass(m, effective, params.Mu)
		}
	}

	return nil
}

// effectiveNeighborhoods derives, per node, the neighbor subset used
// during smoothing: INTERIOR keeps all neighbors, BOUNDARY keeps only
// neighbors whose level is >= its own, PRESCRIBED keeps none.
func effectiveNeighborhoods(ng *meshgraph.Graph, classifier *classify.Classifier) [][]uint32 {
	n := classifier.NodeCount()
	out := make([][]uint32, n)
	for id := 1; id <= n; id++ {
		level := classifier.Level(uint32(id))
		all := ng.Neighbors(uint32(id))
		switch level {
		case classify.Interior:
			out[id-1] = all
		case classify.Boundary:
			var kept []uint32
			for _, m := range all {
				if classifier.Level(m) >= level {
					kept = append(kept, m)
				}
			}
			out[id-1] = kept
		case classify.Prescribed:
			out[id-1] = nil
		}
	}
	return out
}

// laplacePass performs one Jacobi sweep: every node's update reads from
// a frozen start-of-pass snapshot and writes to a fresh buffer, so no
// node ever reads another node's already-updated position within the
// same pass.
func laplacePass(m *mesh.Mesh, effective [][]uint32, scaleFactor float64) {
	n := m.NodeCount()
	snapshot := make([]vec3.Vec, n)
	for i := 0; i < n; i++ {
		snapshot[i] = m.Coordinate(uint32(i + 1))
	}

	updated := make([]vec3.Vec, n)
	for i := 0; i < n; i++ {
		neighbors := effective[i]
		if len(neighbors) == 0 {
			updated[i] = snapshot[i]
			continue
		}
		xs := make([]float64, len(neighbors))
		ys := make([]float64, len(neighbors))
		zs := make([]float64, len(neighbors))
		for k, nb := range neighbors {
			p := snapshot[nb-1]
			xs[k], ys[k], zs[k] = p.X, p.Y, p.Z
		}
		count := float64(len(neighbors))
		avg := vec3.Vec{
			X: floats.Sum(xs) / count,
			Y: floats.Sum(ys) / count,
			Z: floats.Sum(zs) / count,
		}
		delta := avg.Sub(snapshot[i]).Scale(scaleFactor)
		updated[i] = snapshot[i].Add(delta)
	}

	for i := 0; i < n; i++ {
		m.SetCoordinate(uint32(i+1), updated[i])
	}
}
