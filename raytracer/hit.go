// Package raytracer implements the scene store, primitive intersectors,
// BVH, shading pipeline, and tile renderer of an interactive CPU
// raytracer.
package raytracer

import "github.com/gorender/raytracer/geom"

// Hit is the result of a successful ray-object intersection. Distance is
// measured along the world-space ray in world units; Normal is unit-length;
// Origin is the hit point in world space. MaterialIndex indexes World's
// material collection.
type Hit struct {
	Origin        geom.Vector
	Normal        geom.Vector
	Distance      float64
	MaterialIndex int
}
