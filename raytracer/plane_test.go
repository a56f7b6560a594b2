package raytracer

import (
	"testing"

	"github.com/gorender/raytracer/geom"
)

func TestPlaneIntersectHit(t *testing.T) {
	p := Plane{Point: geom.Vector{X: 0, Y: 0, Z: 5}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
	hit, ok := p.intersect(geom.Vector{}, geom.Vector{X: 0, Y: 0, Z: 1})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Distance != 5 {
		t.Fatalf("distance = %v, want 5", hit.Distance)
	}
	if hit.Normal != p.Normal {
		t.Fatalf("normal = %v, want %v (plane normal is never flipped)", hit.Normal, p.Normal)
	}
}

func TestPlaneIntersectParallelMisses(t *testing.T) {
	p := Plane{Point: geom.Vector{X: 0, Y: 0, Z: 5}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
	if _, ok := p.intersect(geom.Vector{}, geom.Vector{X: 1, Y: 0, Z: 0}); ok {
		t.Fatal("expected no hit for a ray parallel to the plane")
	}
}

func TestPlaneIntersectBehindOriginMisses(t *testing.T) {
	p := Plane{Point: geom.Vector{X: 0, Y: 0, Z: -5}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
	if _, ok := p.intersect(geom.Vector{}, geom.Vector{X: 0, Y: 0, Z: 1}); ok {
		t.Fatal("expected no hit when the plane is behind the ray origin")
	}
}
