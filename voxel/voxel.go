// Package voxel defines the dense, immutable segmented voxel grid that
// the mesh builder consumes. A VoxelGrid carries one non-negative
// integer material label per cell, indexed [z][y][x] with x fastest.
package voxel

import (
	"fmt"

	"github.com/latticeforge/automesh/automesherr"
)

// Grid is a dense 3-D array of material labels, immutable once built.
type Grid struct {
	nx, ny, nz int
	labels     []uint32 // flat, x fastest, then y, then z; length nx*ny*nz
}

// New builds a Grid of extents (nx,ny,nz) from a flat, x-fastest label
// slice. Returns automesherr.ErrInputShape if any extent is non-positive
// or the slice length does not match nx*ny*nz.
func New(nx, ny, nz int, labels []uint32) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("%w: non-positive grid extents (%d,%d,%d)",
			automesherr.ErrInputShape, nx, ny, nz)
	}
	want := nx * ny * nz
	if len(labels) != want {
		return nil, fmt.Errorf("%w: expected %d labels, got %d",
			automesherr.ErrInputShape, want, len(labels))
	}
	return &Grid{nx: nx, ny: ny, nz: nz, labels: labels}, nil
}

// Shape returns the voxel grid extents (Nx,Ny,Nz).
func (g *Grid) Shape() (nx, ny, nz int) {
	return g.nx, g.ny, g.nz
}

// At returns the material label of voxel (ix,iy,iz).
func (g *Grid) At(ix, iy, iz int) uint32 {
	return g.labels[g.index(ix, iy, iz)]
}

func (g *Grid) index(ix, iy, iz int) int {
	return iz*g.ny*g.nx + iy*g.nx + ix
}

// Labels returns the set of distinct labels present anywhere in the grid.
func (g *Grid) Labels() map[uint32]bool {
	set := make(map[uint32]bool)
	for _, l := range g.labels {
		set[l] = true
	}
	return set
}

// HasLabel reports whether label appears anywhere in the grid.
func (g *Grid) HasLabel(label uint32) bool {
	for _, l := range g.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Each calls f once per voxel in lexicographic (iz,iy,ix) order, x
// fastest, matching the traversal order required by mesh.Build.
func (g *Grid) Each(f func(ix, iy, iz int, label uint32)) {
	for iz := 0; iz < g.nz; iz++ {
		for iy := 0; iy < g.ny; iy++ {
			for ix := 0; ix < g.nx; ix++ {
				f(ix, iy, iz, g.labels[g.index(ix, iy, iz)])
			}
		}
	}
}
