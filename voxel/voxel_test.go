package voxel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/automesh/automesherr"
	"github.com/latticeforge/automesh/voxel"
)

func TestNewRejectsShapeMismatch(t *testing.T) {
	_, err := voxel.New(2, 2, 2, []uint32{1, 2, 3})
	require.True(t, errors.Is(err, automesherr.ErrInputShape))
}

func TestNewRejectsNonPositiveExtent(t *testing.T) {
	_, err := voxel.New(0, 1, 1, nil)
	require.True(t, errors.Is(err, automesherr.ErrInputShape))
}

func TestAtAndEachTraversalOrder(t *testing.T) {
	// x fastest, then y, then z.
	labels := []uint32{1, 2, 3, 4, 5, 6}
	g, err := voxel.New(2, 3, 1, labels)
	require.NoError(t, err)

	require.Equal(t, uint32(1), g.At(0, 0, 0))
	require.Equal(t, uint32(2), g.At(1, 0, 0))
	require.Equal(t, uint32(3), g.At(0, 1, 0))
	require.Equal(t, uint32(5), g.At(0, 2, 0))

	var seen []uint32
	g.Each(func(ix, iy, iz int, label uint32) {
		seen = append(seen, label)
	})
	require.Equal(t, labels, seen)
}

func TestHasLabelAndLabels(t *testing.T) {
	g, err := voxel.New(1, 1, 2, []uint32{0, 11})
	require.NoError(t, err)
	require.True(t, g.HasLabel(11))
	require.False(t, g.HasLabel(21))
	require.Equal(t, map[uint32]bool{0: true, 11: true}, g.Labels())
}
