// Package vec3 provides a minimal 3D vector type shared by the mesh,
// smoothing, and exchange packages.
package vec3

import "math"

// Vec is a 3-element vector of 64-bit floats.
type Vec struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec) Sub(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled component-wise by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s, v.Z * s}
}

// MulElem returns the component-wise (Hadamard) product of v and other.
func (v Vec) MulElem(other Vec) Vec {
	return Vec{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Length returns the Euclidean norm of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether every component of v is finite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// FromIJK builds a Vec from integer lattice coordinates.
func FromIJK(i, j, k int) Vec {
	return Vec{float64(i), float64(j), float64(k)}
}
