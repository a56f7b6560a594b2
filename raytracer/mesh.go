package raytracer

import (
	"math"

	"github.com/gorender/raytracer/geom"
)

// Shading selects how a mesh's triangle normals are presented to shading:
// Flat uses the raw per-triangle face normal; Smooth is reserved for a
// future interpolated-normal pass and currently behaves like Flat, since
// none of this module's OBJ inputs carry vertex normals.
type Shading int

const (
	Flat Shading = iota
	Smooth
)

// Mesh is a triangle mesh primitive, positioned, scaled, and oriented by an
// affine transform applied to its local-space vertices.
type Mesh struct {
	Position geom.Vector
	Scale    float64
	Pitch    geom.Angle
	Yaw      geom.Angle
	Roll     geom.Angle
	Shading  Shading

	vertices []geom.Vector
	faces    []meshFace
	bvh      *bvhNode
	bounds   geom.Box // world-space, cached for the broad-phase index
}

// NewMesh builds a Mesh from local-space vertices and triangle faces,
// constructing its BVH immediately. The returned Mesh is ready to be added
// to a World once positioned.
func NewMesh(vertices []geom.Vector, faces [][3]int, position geom.Vector) *Mesh {
	m := &Mesh{
		Position: position,
		Scale:    1,
		vertices: vertices,
		faces:    make([]meshFace, len(faces)),
	}
	for i, f := range faces {
		m.faces[i] = meshFace{V0: f[0], V1: f[1], V2: f[2]}
	}
	m.rebuildBVH()
	m.recomputeWorldBounds()
	return m
}

func (m *Mesh) rebuildBVH() {
	if len(m.faces) == 0 {
		m.bvh = nil
		return
	}
	m.bvh = buildBVH(m.vertices, m.faces, 0)
}

// localToWorld returns the affine transform taking local-space mesh
// vertices to world space: scale, then pitch, then yaw, then roll, then
// translate. Rotation order matches how a mesh's orientation is built up
// interactively, one axis at a time.
func (m *Mesh) localToWorld() geom.Mat4 {
	return geom.Scaling4(m.Scale, m.Scale, m.Scale).
		Mul(geom.RotationPitch4(m.Pitch)).
		Mul(geom.RotationYaw4(m.Yaw)).
		Mul(geom.RotationRoll4(m.Roll)).
		Mul(geom.Translation4(m.Position))
}

func (m *Mesh) worldToLocal() geom.Mat4 {
	return m.localToWorld().Inverse()
}

// recomputeWorldBounds transforms every local-space vertex into world
// space and caches the resulting AABB, used by World's broad-phase object
// index. It is conservative: the true swept bound of a rotated mesh is
// tighter than the axis-aligned box of its transformed vertices, but the
// box always contains the mesh, which is all correctness requires.
func (m *Mesh) recomputeWorldBounds() {
	toWorld := m.localToWorld()
	b := geom.EmptyBox()
	for _, v := range m.vertices {
		b = b.ExpandPoint(toWorld.TransformPoint(v))
	}
	m.bounds = b
}

// BoundingBox returns the mesh's cached world-space AABB.
func (m *Mesh) BoundingBox() geom.Box {
	return m.bounds
}

func (m *Mesh) intersect(origin, dir geom.Vector) (Hit, bool) {
	if m.bvh == nil {
		return Hit{}, false
	}

	toLocal := m.worldToLocal()
	localOrigin := toLocal.TransformPoint(origin)
	localDir := toLocal.TransformDirection(dir).Norm()
	localDirInv := geom.Vector{X: 1 / localDir.X, Y: 1 / localDir.Y, Z: 1 / localDir.Z}

	bestDistance := math.MaxFloat64
	var bestHit Hit

	if !intersectBVH(m.bvh, m.faces, m.vertices, localOrigin, localDir, localDirInv, &bestDistance, &bestHit) {
		return Hit{}, false
	}

	toWorld := m.localToWorld()
	bestHit.Origin = toWorld.TransformPoint(bestHit.Origin)
	bestHit.Normal = toWorld.TransformDirection(bestHit.Normal).Norm()
	bestHit.Distance = bestHit.Origin.Sub(origin).Len()

	return bestHit, true
}
