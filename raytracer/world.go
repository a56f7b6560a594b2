package raytracer

import (
	"math"

	"github.com/gorender/raytracer/colour"
	"github.com/gorender/raytracer/geom"
)

// shape is implemented by every primitive World can hold.
type shape interface {
	intersect(origin, dir geom.Vector) (Hit, bool)
}

type worldObject struct {
	shape         shape
	materialIndex int
}

// World is the scene store: objects, materials, lights, camera state, and
// the render flags a running session can toggle interactively.
type World struct {
	objects   []worldObject
	materials []Material
	lights    []PointLight
	bp        *broadphase

	cameraPosition                    geom.Vector
	cameraPitch, cameraYaw, cameraRoll geom.Angle

	backgroundColor colour.Color
	fov             geom.Angle
	checkerboard    bool
	shadows         bool
	bsdfMode        BsdfMode
	giMode          GiMode
}

// NewWorld returns an empty world with its default render flags: an 80
// degree field of view, checkerboard interlacing and shadows on, and the
// Default BSDF debug mode with GI off.
func NewWorld() *World {
	return &World{
		bp:           newBroadphase(),
		fov:          geom.Deg(80),
		checkerboard: true,
		shadows:      true,
	}
}

// addMaterial returns the index of material in w.materials, appending it
// if no structurally equal material is already stored.
func (w *World) addMaterial(material Material) int {
	for i, m := range w.materials {
		if m.equal(material) {
			return i
		}
	}
	w.materials = append(w.materials, material)
	return len(w.materials) - 1
}

// AddSphere adds a sphere with the given material and returns its object
// index.
func (w *World) AddSphere(s Sphere, material Material) int {
	return w.addObject(s, material)
}

// AddPlane adds an infinite plane with the given material and returns its
// object index. Planes are never inserted into the broad-phase index: they
// are unbounded and are always tested directly.
func (w *World) AddPlane(p Plane, material Material) int {
	return w.addObject(p, material)
}

// AddMesh adds a mesh with the given material and returns the same pointer,
// so callers can keep a handle to mutate the mesh's transform later (see
// NotifyMeshChanged).
func (w *World) AddMesh(m *Mesh, material Material) *Mesh {
	w.addObject(m, material)
	return m
}

func (w *World) addObject(s shape, material Material) int {
	materialIndex := w.addMaterial(material)
	w.objects = append(w.objects, worldObject{shape: s, materialIndex: materialIndex})
	w.bp.markDirty()
	return len(w.objects) - 1
}

// AddLight adds a point light to the scene.
func (w *World) AddLight(l PointLight) {
	w.lights = append(w.lights, l)
}

// NotifyMeshChanged must be called after mutating a mesh's Position, Scale,
// or rotation fields directly, so its cached world-space bounds and the
// broad-phase index stay consistent.
func (w *World) NotifyMeshChanged(m *Mesh) {
	m.recomputeWorldBounds()
	w.bp.markDirty()
}

func (w *World) Lights() []PointLight { return w.lights }

func (w *World) MaterialAt(index int) Material { return w.materials[index] }

func (w *World) CameraPosition() geom.Vector { return w.cameraPosition }

func (w *World) BackgroundColor() colour.Color { return w.backgroundColor }

func (w *World) SetBackgroundColor(c colour.Color) { w.backgroundColor = c }

func (w *World) SetFov(angle geom.Angle) { w.fov = angle }

func (w *World) Fov() geom.Angle { return w.fov }

func (w *World) SetCheckerboard(value bool) { w.checkerboard = value }

func (w *World) Checkerboard() bool { return w.checkerboard }

func (w *World) SetShadows(value bool) { w.shadows = value }

func (w *World) Shadows() bool { return w.shadows }

func (w *World) SetBsdfMode(mode BsdfMode) { w.bsdfMode = mode }

func (w *World) BsdfMode() BsdfMode { return w.bsdfMode }

func (w *World) CycleBsdfMode() { w.bsdfMode = w.bsdfMode.Cycle() }

func (w *World) SetGiMode(mode GiMode) { w.giMode = mode }

func (w *World) GiMode() GiMode { return w.giMode }

func (w *World) CycleGiMode() { w.giMode = w.giMode.Cycle() }

// Move translates the camera by vector, rotated by the camera's current
// yaw, so "forward" always means the direction the camera currently faces
// in the horizontal plane.
func (w *World) Move(vector geom.Vector) {
	rotation := geom.RotationYaw(w.cameraYaw)
	w.cameraPosition = w.cameraPosition.Add(rotation.MulVector(vector))
}

func (w *World) RotatePitch(angle geom.Angle) { w.cameraPitch = w.cameraPitch.Add(angle) }
func (w *World) RotateYaw(angle geom.Angle)   { w.cameraYaw = w.cameraYaw.Add(angle) }
func (w *World) RotateRoll(angle geom.Angle)  { w.cameraRoll = w.cameraRoll.Add(angle) }

// rotationMatrix returns the camera's pitch-then-yaw orientation, applied
// to a forward-facing ray direction before it is cast. Roll is tracked for
// completeness but is not folded into the camera's view rotation.
func (w *World) rotationMatrix() geom.Mat3 {
	return geom.RotationPitch(w.cameraPitch).Mul(geom.RotationYaw(w.cameraYaw))
}

// CastRay finds the closest intersection along the ray from origin in
// direction dir, which need not be unit length: it is normalized once here
// so that Hit.Distance is comparable regardless of what built the ray.
// Bounded objects are pruned through the broad-phase index first; planes,
// being unbounded, are always tested directly. Every object surviving the
// broad-phase still receives its own exact intersection test, so pruning
// can never change which hit is nearest.
func (w *World) CastRay(origin, dir geom.Vector) (Hit, bool) {
	dir = dir.Norm()
	dirInv := geom.Vector{X: 1 / dir.X, Y: 1 / dir.Y, Z: 1 / dir.Z}

	w.bp.ensureFresh(w.objects)

	var best Hit
	found := false

	tryObject := func(index int) {
		obj := w.objects[index]
		hit, ok := obj.shape.intersect(origin, dir)
		if ok && (!found || hit.Distance < best.Distance) {
			hit.MaterialIndex = obj.materialIndex
			best = hit
			found = true
		}
	}

	for _, index := range w.bp.candidates(origin, dirInv) {
		tryObject(index)
	}

	for i, obj := range w.objects {
		if _, isBounded := obj.shape.(bounded); isBounded {
			continue
		}
		tryObject(i)
	}

	return best, found
}

// PixelTarget is the writable surface a World renders into. It is the only
// contact point between World.Draw and whatever owns the actual pixels
// (an SDL2 surface, an in-memory image, a test fixture).
type PixelTarget interface {
	Width() int
	Height() int
	Set(x, y int, c colour.RGBA8)
}

// InputSnapshot supplies the single piece of external state Draw needs to
// reproduce checkerboard interlacing across frames: a counter that advances
// once per frame.
type InputSnapshot interface {
	Counter() uint64
}

// Draw renders one frame into target, splitting its rows across
// runtime.NumCPU goroutines. When checkerboard interlacing is enabled, each
// goroutine skips half the pixels in its band based on (x+y+frame) parity,
// relying on target not being cleared between frames to fill in the other
// half over time.
func (w *World) Draw(target PixelTarget, input InputSnapshot) {
	width, height := target.Width(), target.Height()
	if width <= 0 || height <= 0 {
		return
	}

	aspect := float64(width) / float64(height)
	halfFovTan := math.Tan(w.fov.Radians() / 2)
	rotation := w.rotationMatrix()
	frame := input.Counter()
	checkerboard := w.checkerboard

	renderRows(height, func(y int) {
		for x := 0; x < width; x++ {
			if checkerboard && (uint64(x+y)+frame)%2 == 0 {
				continue
			}

			ndcX := (2*(float64(x)+0.5)/float64(width) - 1) * aspect
			ndcY := 1 - 2*(float64(y)+0.5)/float64(height)

			px := ndcX * halfFovTan
			py := ndcY * halfFovTan

			forward := geom.Vector{X: px, Y: py, Z: 1}.Norm()
			rayDir := rotation.MulVector(forward)

			if hit, ok := w.CastRay(w.cameraPosition, rayDir); ok {
				color := w.materials[hit.MaterialIndex].Shade(hit, w, 0)
				target.Set(x, y, color.Clamp01().ToRGBA8(255))
			}
		}
	})
}
