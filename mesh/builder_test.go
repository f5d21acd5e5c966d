package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/mesh"
	"github.com/latticeforge/automesh/vec3"
	"github.com/latticeforge/automesh/voxel"
)

func singleVoxelGrid(t *testing.T) *voxel.Grid {
	t.Helper()
	g, err := voxel.New(1, 1, 1, []uint32{11})
	require.NoError(t, err)
	return g
}

func TestBuildSingleVoxel(t *testing.T) {
	g := singleVoxelGrid(t)
	m, err := mesh.Build(g, map[uint32]bool{11: true}, mesh.DefaultTransform())
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Equal(t, 8, m.NodeCount())
	require.Len(t, m.Blocks, 1)
	require.Equal(t, uint32(11), m.Blocks[0].Label)
	require.Equal(t, []mesh.Element{{Nodes: [8]uint32{1, 2, 4, 3, 5, 6, 8, 7}}}, m.Blocks[0].Elements)

	// Node 1 sits at lattice corner (0,0,0); node 8 (local index 6) at (1,1,1).
	require.Equal(t, vec3.Vec{X: 0, Y: 0, Z: 0}, m.Coordinate(1))
	require.Equal(t, vec3.Vec{X: 1, Y: 1, Z: 1}, m.Coordinate(8))
}

func TestBuildAppliesAffineTransform(t *testing.T) {
	g := singleVoxelGrid(t)
	xform := mesh.AffineTransform{
		Scale:     vec3.Vec{X: 2, Y: 2, Z: 2},
		Translate: vec3.Vec{X: 10, Y: 0, Z: 0},
	}
	m, err := mesh.Build(g, map[uint32]bool{11: true}, xform)
	require.NoError(t, err)
	require.Equal(t, vec3.Vec{X: 10, Y: 0, Z: 0}, m.Coordinate(1))
	require.Equal(t, vec3.Vec{X: 12, Y: 2, Z: 2}, m.Coordinate(8))
}

func TestBuildRejectsNonFiniteTransform(t *testing.T) {
	g := singleVoxelGrid(t)
	xform := mesh.AffineTransform{Scale: vec3.Vec{X: math.NaN(), Y: 1, Z: 1}}
	_, err := mesh.Build(g, map[uint32]bool{11: true}, xform)
	require.True(t, errors.Is(err, automesherr.ErrBadParameter))
}

func TestBuildRejectsUnknownLabel(t *testing.T) {
	g := singleVoxelGrid(t)
	_, err := mesh.Build(g, map[uint32]bool{99: true}, mesh.DefaultTransform())
	require.True(t, errors.Is(err, automesherr.ErrUnknownLabel))
}

func TestBuildRejectsEmptyInclusion(t *testing.T) {
	g, err := voxel.New(1, 1, 1, []uint32{0})
	require.NoError(t, err)
	_, err = mesh.Build(g, map[uint32]bool{}, mesh.DefaultTransform())
	require.True(t, errors.Is(err, automesherr.ErrEmptyMesh))
}

// TestBuildRejectsZeroLabelInclusion guards invariant I4 (0 is never a
// block label): including label 0 would otherwise build a Block{Label: 0}
// that Mesh.Validate rejects after the fact.
func TestBuildRejectsZeroLabelInclusion(t *testing.T) {
	g, err := voxel.New(1, 1, 1, []uint32{0})
	require.NoError(t, err)
	_, err = mesh.Build(g, map[uint32]bool{0: true}, mesh.DefaultTransform())
	require.True(t, errors.Is(err, automesherr.ErrBadParameter))
}

// TestBuildCompactsAroundVoid reproduces doc/voxels.py's QuadrupleVoid
// fixture: a 1x1x4 row with the two interior voxels excluded. The gold
// fixture there records raw (uncompacted) lattice ids for plotting; the
// expected values below are those ids renumbered 1..16 in ascending
// original-id order, which is this builder's compaction contract.
func TestBuildCompactsAroundVoid(t *testing.T) {
	g, err := voxel.New(4, 1, 1, []uint32{11, 0, 0, 11})
	require.NoError(t, err)
	m, err := mesh.Build(g, map[uint32]bool{11: true}, mesh.DefaultTransform())
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Len(t, m.Blocks, 1)
	require.Len(t, m.Blocks[0].Elements, 2)
	require.Equal(t, [8]uint32{1, 2, 6, 5, 9, 10, 14, 13}, m.Blocks[0].Elements[0].Nodes)
	require.Equal(t, [8]uint32{3, 4, 8, 7, 11, 12, 16, 15}, m.Blocks[0].Elements[1].Nodes)
	require.Equal(t, 16, m.NodeCount())
}

// TestBuildTwoBlocks reproduces doc/voxels.py's QuadrupleTwoBlocks fixture:
// two distinct labels sharing the same lattice, yielding two mesh blocks
// ordered ascending by label with a shared compacted node space.
func TestBuildTwoBlocks(t *testing.T) {
	g, err := voxel.New(4, 1, 1, []uint32{11, 21, 21, 11})
	require.NoError(t, err)
	m, err := mesh.Build(g, map[uint32]bool{11: true, 21: true}, mesh.DefaultTransform())
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Len(t, m.Blocks, 2)
	require.Equal(t, uint32(11), m.Blocks[0].Label)
	require.Equal(t, uint32(21), m.Blocks[1].Label)
	require.Equal(t, [8]uint32{1, 2, 7, 6, 11, 12, 17, 16}, m.Blocks[0].Elements[0].Nodes)
	require.Equal(t, [8]uint32{4, 5, 10, 9, 14, 15, 20, 19}, m.Blocks[0].Elements[1].Nodes)
	require.Equal(t, [8]uint32{2, 3, 8, 7, 12, 13, 18, 17}, m.Blocks[1].Elements[0].Nodes)
	require.Equal(t, [8]uint32{3, 4, 9, 8, 13, 14, 19, 18}, m.Blocks[1].Elements[1].Nodes)
}

func TestMeshValidateCatchesGap(t *testing.T) {
	m := &mesh.Mesh{
		Blocks: []mesh.Block{{Label: 1, Elements: []mesh.Element{{Nodes: [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}}}}},
		Coordinates: []vec3.Vec{
			{}, {}, {}, {}, {}, {}, {}, {}, {}, // node 9 never referenced
		},
	}
	err := m.Validate()
	require.True(t, errors.Is(err, automesherr.ErrInputShape))
}
