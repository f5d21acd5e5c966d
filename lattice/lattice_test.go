package lattice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/lattice"
)

func TestIDRoundTrip(t *testing.T) {
	nx, ny, nz := 3, 2, 4
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				id, err := lattice.ID(i, j, k, nx, ny, nz)
				require.NoError(t, err)
				gotI, gotJ, gotK, err := lattice.Coord(id, nx, ny, nz)
				require.NoError(t, err)
				require.Equal(t, [3]int{i, j, k}, [3]int{gotI, gotJ, gotK})
			}
		}
	}
}

func TestIDOutOfRange(t *testing.T) {
	_, err := lattice.ID(-1, 0, 0, 1, 1, 1)
	require.True(t, errors.Is(err, automesherr.ErrOutOfRange))

	_, err = lattice.ID(0, 0, 2, 1, 1, 1)
	require.True(t, errors.Is(err, automesherr.ErrOutOfRange))
}

func TestCoordOutOfRange(t *testing.T) {
	_, _, _, err := lattice.Coord(0, 1, 1, 1)
	require.True(t, errors.Is(err, automesherr.ErrOutOfRange))

	_, _, _, err = lattice.Coord(9, 1, 1, 1)
	require.True(t, errors.Is(err, automesherr.ErrOutOfRange))
}

// TestVoxelCornersSingle reproduces the single-voxel lattice winding from
// the original project's own gold fixture (doc/voxels.py, class Single):
// (1, 2, 4, 3, 5, 6, 8, 7). See DESIGN.md for why this, not the sequential
// 1..8 ordering, is the correct connectivity under the fixed corner table.
func TestVoxelCornersSingle(t *testing.T) {
	got, err := lattice.VoxelCorners(0, 0, 0, 1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, [8]uint32{1, 2, 4, 3, 5, 6, 8, 7}, got)
}

// TestVoxelCornersDouble reproduces doc/voxels.py's Double fixture: two
// voxels coursed along x share a face, so node ids 2,5,8,11 are shared.
func TestVoxelCornersDouble(t *testing.T) {
	nx, ny, nz := 2, 1, 1

	first, err := lattice.VoxelCorners(0, 0, 0, nx, ny, nz)
	require.NoError(t, err)
	require.Equal(t, [8]uint32{1, 2, 5, 4, 7, 8, 11, 10}, first)

	second, err := lattice.VoxelCorners(1, 0, 0, nx, ny, nz)
	require.NoError(t, err)
	require.Equal(t, [8]uint32{2, 3, 6, 5, 8, 9, 12, 11}, second)
}

// TestVoxelCornersCube reproduces doc/voxels.py's Cube fixture: a 2x2x2
// block of voxels, cross-checking the winding table against every axis.
func TestVoxelCornersCube(t *testing.T) {
	nx, ny, nz := 2, 2, 2
	want := [][8]uint32{
		{1, 2, 5, 4, 10, 11, 14, 13},
		{2, 3, 6, 5, 11, 12, 15, 14},
		{4, 5, 8, 7, 13, 14, 17, 16},
		{5, 6, 9, 8, 14, 15, 18, 17},
		{10, 11, 14, 13, 19, 20, 23, 22},
		{11, 12, 15, 14, 20, 21, 24, 23},
		{13, 14, 17, 16, 22, 23, 26, 25},
		{14, 15, 18, 17, 23, 24, 27, 26},
	}

	idx := 0
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				got, err := lattice.VoxelCorners(ix, iy, iz, nx, ny, nz)
				require.NoError(t, err)
				require.Equal(t, want[idx], got, "voxel (%d,%d,%d)", ix, iy, iz)
				idx++
			}
		}
	}
}
