package raytracer

import (
	"math"

	"github.com/gorender/raytracer/geom"
)

// Sphere is an analytic sphere primitive.
type Sphere struct {
	Center geom.Vector
	Radius float64
}

// BoundingBox returns the sphere's world-space axis-aligned bounding box,
// used by World's object broad-phase index.
func (s Sphere) BoundingBox() geom.Box {
	r := geom.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return geom.Box{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// intersect solves ||dir||^2 t^2 + 2 (L.dir) t + (L.L - r^2) = 0 for the
// smallest positive root, where L = origin - center. dir need not be
// unit-length; World.CastRay always passes a normalized direction so that
// Distance stays comparable across primitive kinds, but this method itself
// does not require it.
func (s Sphere) intersect(origin, dir geom.Vector) (Hit, bool) {
	l := origin.Sub(s.Center)
	a := dir.Dot(dir)
	b := 2 * dir.Dot(l)
	c := l.Dot(l) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)

	var t float64
	switch {
	case t0 > 0:
		t = t0
	case t1 > 0:
		t = t1
	default:
		return Hit{}, false
	}

	point := origin.Add(dir.Scale(t))
	return Hit{
		Origin:   point,
		Normal:   point.Sub(s.Center).Norm(),
		Distance: t,
	}, true
}
