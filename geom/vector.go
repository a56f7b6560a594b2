// Package geom provides the math kernel shared by every raytracer package:
// vectors, matrices, and angles.
package geom

import "math"

// Vector represents a point or direction in 3-dimensional space.
type Vector struct {
	X, Y, Z float64
}

// Add returns the sum of vectors a and b.
func (a Vector) Add(b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vector) Scale(s float64) Vector {
	return Vector{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Hadamard returns the component-wise product of vectors a and b.
func (a Vector) Hadamard(b Vector) Vector {
	return Vector{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of the vectors a and b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{X: a.Y*b.Z - a.Z*b.Y, Y: a.Z*b.X - a.X*b.Z, Z: a.X*b.Y - a.Y*b.X}
}

// Zero returns whether the vector a is a zero vector.
func (a Vector) Zero() bool {
	return a.X == 0.0 && a.Y == 0.0 && a.Z == 0.0
}

// Len returns the length of the vector a.
func (a Vector) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Norm returns the normalized form of the vector a.
func (a Vector) Norm() Vector {
	mag := a.Len()
	return Vector{X: a.X / mag, Y: a.Y / mag, Z: a.Z / mag}
}

// Min returns the component-wise minimum of a and b.
func (a Vector) Min(b Vector) Vector {
	return Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func (a Vector) Max(b Vector) Vector {
	return Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Component returns the value along a given axis (0=X, 1=Y, 2=Z).
func (a Vector) Component(axis int) float64 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// Mix linearly interpolates between a and b by t in [0,1].
func Mix(a, b Vector, t float64) Vector {
	return a.Scale(1 - t).Add(b.Scale(t))
}
