package raytracer

import (
	"math"

	"github.com/gorender/raytracer/geom"
)

// Plane is an infinite plane primitive, defined by a point on the plane and
// its unit normal.
type Plane struct {
	Point  geom.Vector
	Normal geom.Vector
}

// planeEpsilon bounds how close dir.Dot(Normal) may be to zero before the
// ray is treated as parallel to the plane.
const planeEpsilon = 1e-6

func (p Plane) intersect(origin, dir geom.Vector) (Hit, bool) {
	denom := dir.Dot(p.Normal)
	if math.Abs(denom) < planeEpsilon {
		return Hit{}, false
	}

	t := p.Point.Sub(origin).Dot(p.Normal) / denom
	if t <= 0 {
		return Hit{}, false
	}

	return Hit{
		Origin:   origin.Add(dir.Scale(t)),
		Normal:   p.Normal.Norm(),
		Distance: t,
	}, true
}
