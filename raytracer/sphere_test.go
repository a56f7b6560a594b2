package raytracer

import (
	"testing"

	"github.com/gorender/raytracer/geom"
)

func TestSphereIntersectHitsNearRoot(t *testing.T) {
	s := Sphere{Center: geom.Vector{X: 0, Y: 0, Z: 5}, Radius: 1}
	hit, ok := s.intersect(geom.Vector{}, geom.Vector{X: 0, Y: 0, Z: 1})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Distance != 4 {
		t.Fatalf("distance = %v, want 4", hit.Distance)
	}
	if hit.Normal != (geom.Vector{X: 0, Y: 0, Z: -1}) {
		t.Fatalf("normal = %v, want (0,0,-1)", hit.Normal)
	}
}

func TestSphereIntersectFromInside(t *testing.T) {
	s := Sphere{Center: geom.Vector{}, Radius: 2}
	hit, ok := s.intersect(geom.Vector{}, geom.Vector{X: 0, Y: 0, Z: 1})
	if !ok {
		t.Fatal("expected a hit when origin is inside the sphere")
	}
	if hit.Distance != 2 {
		t.Fatalf("distance = %v, want 2", hit.Distance)
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s := Sphere{Center: geom.Vector{X: 10, Y: 0, Z: 0}, Radius: 1}
	if _, ok := s.intersect(geom.Vector{}, geom.Vector{X: 0, Y: 0, Z: 1}); ok {
		t.Fatal("expected no hit")
	}
}

func TestSphereIntersectBehindOriginMisses(t *testing.T) {
	s := Sphere{Center: geom.Vector{X: 0, Y: 0, Z: -5}, Radius: 1}
	if _, ok := s.intersect(geom.Vector{}, geom.Vector{X: 0, Y: 0, Z: 1}); ok {
		t.Fatal("expected no hit for a sphere entirely behind the ray origin")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	s := Sphere{Center: geom.Vector{X: 1, Y: 2, Z: 3}, Radius: 2}
	box := s.BoundingBox()
	if box.Min != (geom.Vector{X: -1, Y: 0, Z: 1}) {
		t.Fatalf("min = %v", box.Min)
	}
	if box.Max != (geom.Vector{X: 3, Y: 4, Z: 5}) {
		t.Fatalf("max = %v", box.Max)
	}
}
