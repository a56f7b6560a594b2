package raytracer

import (
	"math"

	"github.com/gorender/raytracer/geom"
)

// bvhLeafSize is the maximum face count a BVH leaf may hold before the
// builder attempts to split it further.
const bvhLeafSize = 4

// bvhNode is one node of a mesh's bounding volume hierarchy. Leaves are
// identified by having both children nil; FaceIndex/FaceCount then index
// into the mesh's (reordered) face slice.
type bvhNode struct {
	Bounds    geom.Box
	FaceIndex int
	FaceCount int
	Left      *bvhNode
	Right     *bvhNode
}

// meshFace is a triangle by vertex index, reordered in place by the BVH
// builder so that each node's faces occupy a contiguous range.
type meshFace struct {
	V0, V1, V2 int
}

func faceCentroid(vertices []geom.Vector, f meshFace) geom.Vector {
	return vertices[f.V0].Add(vertices[f.V1]).Add(vertices[f.V2]).Scale(1.0 / 3.0)
}

func computeFaceBounds(vertices []geom.Vector, faces []meshFace) geom.Box {
	b := geom.EmptyBox()
	for _, f := range faces {
		b = b.ExpandPoint(vertices[f.V0])
		b = b.ExpandPoint(vertices[f.V1])
		b = b.ExpandPoint(vertices[f.V2])
	}
	return b
}

// partitionFaces reorders faces[i:j] in place (Hoare-style) so that every
// face whose centroid lies below split on axis comes first, returning the
// split index.
func partitionFaces(vertices []geom.Vector, faces []meshFace, axis int, split float64) int {
	i, j := 0, len(faces)
	for i < j {
		c := faceCentroid(vertices, faces[i])
		if c.Component(axis) < split {
			i++
		} else {
			j--
			faces[i], faces[j] = faces[j], faces[i]
		}
	}
	return i
}

// buildBVH recursively splits faceOffset:faceOffset+len(faces) (a slice of
// the mesh's shared, in-place-reordered face array) on the longest-extent
// axis at its midpoint. Traversal later always visits both children of an
// internal node, so this builder need not (and does not) try to produce a
// balanced split — only a spatially sensible one.
func buildBVH(vertices []geom.Vector, faces []meshFace, faceOffset int) *bvhNode {
	node := &bvhNode{
		Bounds:    computeFaceBounds(vertices, faces),
		FaceIndex: faceOffset,
		FaceCount: len(faces),
	}

	if len(faces) <= bvhLeafSize {
		return node
	}

	axis := node.Bounds.LongestAxis()
	split := (node.Bounds.Min.Component(axis) + node.Bounds.Max.Component(axis)) * 0.5

	mid := partitionFaces(vertices, faces, axis, split)
	if mid == 0 || mid == len(faces) {
		return node
	}

	node.Left = buildBVH(vertices, faces[:mid], faceOffset)
	node.Right = buildBVH(vertices, faces[mid:], faceOffset+mid)
	return node
}

const triangleEpsilon = 1e-6

// intersectTriangle is the Möller-Trumbore ray-triangle test. It is
// two-sided: no back-face culling is performed.
func intersectTriangle(origin, dir, v0, v1, v2 geom.Vector) (Hit, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < triangleEpsilon {
		return Hit{}, false
	}
	invDet := 1.0 / det

	tvec := origin.Sub(v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	t := e2.Dot(qvec) * invDet
	if t < triangleEpsilon {
		return Hit{}, false
	}

	return Hit{
		Origin:   origin.Add(dir.Scale(t)),
		Normal:   e1.Cross(e2).Norm(),
		Distance: t,
	}, true
}

// intersectBVH traverses node, testing every leaf triangle it reaches and
// updating bestDistance/bestHit with the closest hit found so far. It
// unconditionally recurses into both children of an internal node whose
// bounding box the ray intersects: there is no front-to-back ordering and
// no early-out once a candidate hit is found. This is required for
// reproducibility, not merely simplicity — a BVH that skips the far child
// once a near hit is found can still return the same closest hit, but only
// if child boxes never overlap, which general median-split construction
// does not guarantee.
func intersectBVH(node *bvhNode, faces []meshFace, vertices []geom.Vector, origin, dir, dirInv geom.Vector, bestDistance *float64, bestHit *Hit) bool {
	if _, _, ok := node.Bounds.SlabTest(origin, dirInv); !ok {
		return false
	}

	hitAny := false

	if node.Left == nil && node.Right == nil {
		for i := 0; i < node.FaceCount; i++ {
			f := faces[node.FaceIndex+i]
			hit, ok := intersectTriangle(origin, dir, vertices[f.V0], vertices[f.V1], vertices[f.V2])
			if ok && hit.Distance < *bestDistance {
				*bestDistance = hit.Distance
				*bestHit = hit
				hitAny = true
			}
		}
		return hitAny
	}

	if node.Left != nil {
		if intersectBVH(node.Left, faces, vertices, origin, dir, dirInv, bestDistance, bestHit) {
			hitAny = true
		}
	}
	if node.Right != nil {
		if intersectBVH(node.Right, faces, vertices, origin, dir, dirInv, bestDistance, bestHit) {
			hitAny = true
		}
	}
	return hitAny
}
