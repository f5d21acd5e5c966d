// Package automesherr declares the error taxonomy shared by every core
// and collaborator package. Core functions wrap one of these sentinels
// with fmt.Errorf("%w: ...") so callers can errors.Is against a stable
// kind while still getting a human-readable detail string.
package automesherr

import "errors"

// Sentinel error kinds, one per spec.md §7 taxonomy entry.
var (
	// ErrInputShape covers an empty or non-3-D voxel grid, and an SPN
	// integer count that does not match its declared shape.
	ErrInputShape = errors.New("input shape")

	// ErrOutOfRange covers lattice coordinates outside [0,Nx]x[0,Ny]x[0,Nz].
	ErrOutOfRange = errors.New("lattice coordinate out of range")

	// ErrUnknownLabel covers a requested inclusion label absent from the grid.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrEmptyMesh covers the case where no voxel survives inclusion.
	ErrEmptyMesh = errors.New("empty mesh")

	// ErrClassificationMismatch covers a PRESCRIBED node count that does
	// not match the prescribed-coordinate count, or a prescribed id
	// whose level is not PRESCRIBED.
	ErrClassificationMismatch = errors.New("classification mismatch")

	// ErrBadParameter covers N<1, non-finite scale/translate, and a
	// non-positive Laplace step factor.
	ErrBadParameter = errors.New("bad parameter")

	// ErrIO covers file-level failures at the exchange boundary.
	ErrIO = errors.New("io")
)
