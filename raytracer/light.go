package raytracer

import (
	"github.com/gorender/raytracer/colour"
	"github.com/gorender/raytracer/geom"
)

// PointLight is an omnidirectional light source with no falloff, matching
// the shading recipes in material.go that treat light color as the
// irradiance delivered at any distance.
type PointLight struct {
	Position geom.Vector
	Color    colour.Color
}
