package raytracer

import (
	"math"

	"github.com/gorender/raytracer/geom"
	"github.com/mwindels/rtreego"
)

// boundEpsilon keeps rtreego.Rect from degenerating to zero thickness on
// any axis, which it rejects.
const boundEpsilon = 0.0001

// objectEntry adapts one bounded World object (a Sphere or a *Mesh) to
// rtreego.Spatial so it can live in the broad-phase index. index is this
// object's position in World.objects.
type objectEntry struct {
	box   geom.Box
	index int
}

func (e objectEntry) Bounds() *rtreego.Rect {
	min := e.box.Min
	size := e.box.Max.Sub(e.box.Min)
	rect, err := rtreego.NewRect(
		rtreego.Point{min.X, min.Y, min.Z},
		[]float64{math.Max(size.X, boundEpsilon), math.Max(size.Y, boundEpsilon), math.Max(size.Z, boundEpsilon)},
	)
	if err != nil {
		panic(err)
	}
	return rect
}

// rectIntersectsRay tests a ray against an rtreego.Rect using the same
// slab method geom.Box.SlabTest uses, so broad-phase culling can never
// reject a box the exact test would have accepted.
func rectIntersectsRay(rect *rtreego.Rect, origin, dirInv geom.Vector) bool {
	min := geom.Vector{X: rect.PointCoord(0), Y: rect.PointCoord(1), Z: rect.PointCoord(2)}
	max := geom.Vector{
		X: rect.PointCoord(0) + rect.LengthsCoord(0),
		Y: rect.PointCoord(1) + rect.LengthsCoord(1),
		Z: rect.PointCoord(2) + rect.LengthsCoord(2),
	}
	box := geom.Box{Min: min, Max: max}
	_, _, ok := box.SlabTest(origin, dirInv)
	return ok
}

// broadphase is World's object index: a bulk-rebuilt R-tree over the
// world-space AABBs of every bounded object (Sphere, Mesh). Unbounded
// objects (Plane) are never inserted and are always tested directly by
// World.CastRay. This is purely a pruning step ahead of the exact
// primitive tests already in sphere.go/mesh.go: it can only shrink the
// candidate set to boxes the ray's slab test actually crosses, so it
// cannot change which object is nearest.
type broadphase struct {
	tree  *rtreego.Rtree
	dirty bool
}

func newBroadphase() *broadphase {
	return &broadphase{tree: rtreego.NewTree(3, 2, 5)}
}

func (bp *broadphase) markDirty() { bp.dirty = true }

func (bp *broadphase) rebuild(objects []worldObject) {
	bp.tree = rtreego.NewTree(3, 2, 5)
	for i, obj := range objects {
		b, ok := obj.shape.(bounded)
		if !ok {
			continue
		}
		bp.tree.Insert(objectEntry{box: b.BoundingBox(), index: i})
	}
	bp.dirty = false
}

func (bp *broadphase) ensureFresh(objects []worldObject) {
	if bp.dirty {
		bp.rebuild(objects)
	}
}

// candidates returns the indices of bounded objects whose AABB the ray
// crosses.
func (bp *broadphase) candidates(origin, dirInv geom.Vector) []int {
	hits := bp.tree.SearchCondition(func(rect *rtreego.Rect) bool {
		return rectIntersectsRay(rect, origin, dirInv)
	})
	indices := make([]int, 0, len(hits))
	for _, h := range hits {
		indices = append(indices, h.(objectEntry).index)
	}
	return indices
}

// bounded is implemented by shapes the broad-phase index can hold.
type bounded interface {
	BoundingBox() geom.Box
}
