package geom

import "math"

// Box represents an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

// EmptyBox returns a box with inverted bounds, suitable as the identity
// element for repeated Union calls.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{Min: Vector{X: inf, Y: inf, Z: inf}, Max: Vector{X: -inf, Y: -inf, Z: -inf}}
}

// Union returns the smallest box containing both a and b.
func (a Box) Union(b Box) Box {
	return Box{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// ExpandPoint grows the box to contain v.
func (a Box) ExpandPoint(v Vector) Box {
	return Box{Min: a.Min.Min(v), Max: a.Max.Max(v)}
}

// Center returns the box's midpoint.
func (a Box) Center() Vector {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Extent returns the box's size along each axis.
func (a Box) Extent() Vector {
	return a.Max.Sub(a.Min)
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the axis with the
// largest extent.
func (a Box) LongestAxis() int {
	e := a.Extent()
	axis := 0
	longest := e.X
	if e.Y > longest {
		axis, longest = 1, e.Y
	}
	if e.Z > longest {
		axis = 2
	}
	return axis
}

// SlabTest intersects the ray (origin, dirInv where dirInv is the
// component-wise reciprocal of the ray direction) against the box, per the
// standard slab method. It returns the intersection interval [tmin, tmax]
// and whether it is non-empty.
func (a Box) SlabTest(origin, dirInv Vector) (tmin, tmax float64, ok bool) {
	tmin = math.Inf(-1)
	tmax = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := origin.Component(axis)
		invD := dirInv.Component(axis)
		bmin := a.Min.Component(axis)
		bmax := a.Max.Component(axis)

		t0 := (bmin - o) * invD
		t1 := (bmax - o) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmax < tmin {
			return tmin, tmax, false
		}
	}

	return tmin, tmax, true
}

// Contains reports whether v lies within the box (inclusive).
func (a Box) Contains(v Vector) bool {
	return v.X >= a.Min.X && v.X <= a.Max.X &&
		v.Y >= a.Min.Y && v.Y <= a.Max.Y &&
		v.Z >= a.Min.Z && v.Z <= a.Max.Z
}
