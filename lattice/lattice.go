// Package lattice implements the pure arithmetic that maps voxel-corner
// coordinates to dense, 1-based global node identifiers and back, and
// generates the fixed 8-node hex winding for a single voxel.
//
// Every function here is O(1), allocates nothing beyond its return
// value, and has no dependency on VoxelGrid contents — only on the
// voxel grid extents (Nx,Ny,Nz); the lattice of corners is one larger
// along each axis.
package lattice

import (
	"fmt"

	"github.com/latticeforge/automesh/automesherr"
)

// ID returns the 1-based global node identifier of lattice corner
// (i,j,k) in a lattice of voxel extents (nx,ny,nz), using x-fastest,
// then y, then z ordering:
//
//	id(i,j,k) = k*(nx+1)*(ny+1) + j*(nx+1) + i + 1
func ID(i, j, k, nx, ny, nz int) (uint32, error) {
	if i < 0 || i > nx || j < 0 || j > ny || k < 0 || k > nz {
		return 0, fmt.Errorf("%w: (i,j,k)=(%d,%d,%d) outside [0,%d]x[0,%d]x[0,%d]",
			automesherr.ErrOutOfRange, i, j, k, nx, ny, nz)
	}
	stepX := nx + 1
	stepY := (nx + 1) * (ny + 1)
	return uint32(k*stepY+j*stepX+i) + 1, nil
}

// Coord is the inverse of ID: given a 1-based lattice node id, returns
// the (i,j,k) lattice-corner coordinate it names.
func Coord(id uint32, nx, ny, nz int) (i, j, k int, err error) {
	n := int(id) - 1
	stepX := nx + 1
	stepY := (nx + 1) * (ny + 1)
	maxID, errMax := ID(nx, ny, nz, nx, ny, nz)
	if errMax != nil || id < 1 || id > maxID {
		return 0, 0, 0, fmt.Errorf("%w: lattice id %d outside [1,%d]",
			automesherr.ErrOutOfRange, id, maxID)
	}
	k = n / stepY
	rem := n % stepY
	j = rem / stepX
	i = rem % stepX
	return i, j, k, nil
}

// cornerOffsets is the fixed local-to-global winding table of §3:
// bottom face counter-clockwise viewed from +z, then top face.
var cornerOffsets = [8][3]int{
	{0, 0, 0}, // local 1
	{1, 0, 0}, // local 2
	{1, 1, 0}, // local 3
	{0, 1, 0}, // local 4
	{0, 0, 1}, // local 5
	{1, 0, 1}, // local 6
	{1, 1, 1}, // local 7
	{0, 1, 1}, // local 8
}

// VoxelCorners returns the 8 lattice node ids of voxel (ix,iy,iz) in the
// fixed local winding above, for a voxel grid of extents (nx,ny,nz).
func VoxelCorners(ix, iy, iz, nx, ny, nz int) ([8]uint32, error) {
	var out [8]uint32
	for n, off := range cornerOffsets {
		id, err := ID(ix+off[0], iy+off[1], iz+off[2], nx, ny, nz)
		if err != nil {
			return out, err
		}
		out[n] = id
	}
	return out, nil
}
