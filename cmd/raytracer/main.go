// Command raytracer is the interactive demo: it builds a sample scene (a
// boxed room of metal and dielectric spheres plus a loaded mesh), opens a
// window, and runs the input/update/draw loop until the user quits.
package main

import (
	"log"
	"os"

	"github.com/gorender/raytracer/colour"
	"github.com/gorender/raytracer/geom"
	"github.com/gorender/raytracer/input"
	"github.com/gorender/raytracer/loader"
	"github.com/gorender/raytracer/raytracer"
	"github.com/gorender/raytracer/screen"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowWidth  = 960
	windowHeight = 540
)

// osReader adapts os.ReadFile to loader.ByteReader.
type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func buildScene() (*raytracer.World, *raytracer.Mesh) {
	world := raytracer.NewWorld()

	backgroundB := raytracer.Bsdf{Color: colour.Color{R: 0.2, G: 0.2, B: 0.2}, Roughness: 1, Metallic: 0}
	emissive := raytracer.Bsdf{Color: colour.White, Emissive: colour.Color{R: 1000, G: 1000, B: 1000}}

	gray := colour.Color{R: 0.5, G: 0.5, B: 0.5}
	white := colour.White
	red := colour.Color{R: 1, G: 0, B: 0}

	roughDielectric := raytracer.Bsdf{Color: gray, Roughness: 1, Metallic: 0}
	mediumDielectric := raytracer.Bsdf{Color: gray, Roughness: 0.6, Metallic: 0}
	smoothDielectric := raytracer.Bsdf{Color: gray, Roughness: 0.1, Metallic: 0}
	roughMetal := raytracer.Bsdf{Color: white, Roughness: 1, Metallic: 1}
	mediumMetal := raytracer.Bsdf{Color: white, Roughness: 0.6, Metallic: 1}
	smoothMetal := raytracer.Bsdf{Color: white, Roughness: 0.1, Metallic: 1}
	roughDielectricRed := raytracer.Bsdf{Color: red, Roughness: 1, Metallic: 0}

	world.AddPlane(raytracer.Plane{Point: geom.Vector{X: 0, Y: 0, Z: 10}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}, backgroundB)
	world.AddPlane(raytracer.Plane{Point: geom.Vector{X: 0, Y: 0, Z: 0}, Normal: geom.Vector{X: 0, Y: 1, Z: 0}}, backgroundB)
	world.AddPlane(raytracer.Plane{Point: geom.Vector{X: 0, Y: 10, Z: 0}, Normal: geom.Vector{X: 0, Y: -1, Z: 0}}, emissive)
	world.AddPlane(raytracer.Plane{Point: geom.Vector{X: 5, Y: 0, Z: 0}, Normal: geom.Vector{X: -1, Y: 0, Z: 0}}, backgroundB)
	world.AddPlane(raytracer.Plane{Point: geom.Vector{X: -5, Y: 0, Z: 0}, Normal: geom.Vector{X: 1, Y: 0, Z: 0}}, backgroundB)

	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: -1.75, Y: 1, Z: 0}, Radius: 0.75}, roughMetal)
	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: 0, Y: 1, Z: 0}, Radius: 0.75}, mediumMetal)
	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: 1.75, Y: 1, Z: 0}, Radius: 0.75}, smoothMetal)
	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: -1.75, Y: 3, Z: 0}, Radius: 0.75}, roughDielectric)
	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: 0, Y: 3, Z: 0}, Radius: 0.75}, mediumDielectric)
	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: 1.75, Y: 3, Z: 0}, Radius: 0.75}, smoothDielectric)

	world.AddLight(raytracer.PointLight{Position: geom.Vector{X: 0, Y: 5, Z: 5}, Color: colour.Color{R: 1, G: 0.6, B: 0.45}})
	world.AddLight(raytracer.PointLight{Position: geom.Vector{X: -2.5, Y: 5, Z: -5}, Color: colour.Color{R: 1, G: 0.8, B: 0.45}})
	world.AddLight(raytracer.PointLight{Position: geom.Vector{X: 2.5, Y: 2.5, Z: -5}, Color: colour.Color{R: 0.35, G: 0.45, B: 0.65}})

	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: 3.25, Y: 1, Z: -2}, Radius: 0.75}, emissive)
	world.AddSphere(raytracer.Sphere{Center: geom.Vector{X: -3.25, Y: 1, Z: -2}, Radius: 0.75}, roughDielectricRed)

	var bunny *raytracer.Mesh
	loaded, err := loader.Load(osReader{}, "res/bunny.obj", geom.Vector{X: 0, Y: 0, Z: -4})
	if err != nil {
		log.Printf("raytracer: skipping mesh load: %v", err)
	} else {
		loaded.Scale = 10
		bunny = world.AddMesh(loaded, mediumMetal)
	}

	world.Move(geom.Vector{X: 0, Y: 3, Z: -9})

	return world, bunny
}

func main() {
	scr, err := screen.Open("Raytracer", windowWidth, windowHeight)
	if err != nil {
		log.Fatalf("raytracer: opening screen: %v", err)
	}
	defer scr.Close()

	world, bunny := buildScene()
	in := input.New()

	for running := true; running; {
		frameStart := sdl.GetTicks()

		running = in.Poll()
		update(world, in)

		if bunny != nil {
			bunny.Yaw = bunny.Yaw.Add(geom.Deg(1))
			world.NotifyMeshChanged(bunny)
		}

		world.Draw(scr, in)
		scr.Present()

		elapsed := sdl.GetTicks() - frameStart
		if elapsed < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - elapsed)
		}
	}
}

func update(world *raytracer.World, in *input.Input) {
	speed := 0.2
	if in.Held(sdl.SCANCODE_LSHIFT) || in.Held(sdl.SCANCODE_RSHIFT) {
		speed = 1.0
	}
	rotationSpeed := geom.Deg(2)

	if in.Pressed(sdl.SCANCODE_O) {
		world.SetFov(world.Fov().Add(geom.Deg(1)))
	}
	if in.Pressed(sdl.SCANCODE_P) {
		world.SetFov(world.Fov().Sub(geom.Deg(1)))
	}
	if in.Pressed(sdl.SCANCODE_I) {
		world.SetCheckerboard(!world.Checkerboard())
	}
	if in.Pressed(sdl.SCANCODE_U) {
		world.SetShadows(!world.Shadows())
	}
	if in.Pressed(sdl.SCANCODE_Y) {
		world.CycleBsdfMode()
	}
	if in.Pressed(sdl.SCANCODE_T) {
		world.CycleGiMode()
	}

	if in.Held(sdl.SCANCODE_W) && !in.Held(sdl.SCANCODE_S) {
		world.Move(geom.Vector{X: 0, Y: 0, Z: speed})
	}
	if in.Held(sdl.SCANCODE_S) && !in.Held(sdl.SCANCODE_W) {
		world.Move(geom.Vector{X: 0, Y: 0, Z: -speed})
	}
	if in.Held(sdl.SCANCODE_A) && !in.Held(sdl.SCANCODE_D) {
		world.Move(geom.Vector{X: -speed, Y: 0, Z: 0})
	}
	if in.Held(sdl.SCANCODE_D) && !in.Held(sdl.SCANCODE_A) {
		world.Move(geom.Vector{X: speed, Y: 0, Z: 0})
	}

	if in.Held(sdl.SCANCODE_SPACE) && !in.Held(sdl.SCANCODE_LCTRL) {
		world.Move(geom.Vector{X: 0, Y: speed, Z: 0})
	}
	if in.Held(sdl.SCANCODE_LCTRL) && !in.Held(sdl.SCANCODE_SPACE) {
		world.Move(geom.Vector{X: 0, Y: -speed, Z: 0})
	}

	if in.Held(sdl.SCANCODE_UP) && !in.Held(sdl.SCANCODE_DOWN) {
		world.RotatePitch(rotationSpeed)
	}
	if in.Held(sdl.SCANCODE_DOWN) && !in.Held(sdl.SCANCODE_UP) {
		world.RotatePitch(rotationSpeed.Neg())
	}
	if in.Held(sdl.SCANCODE_LEFT) && !in.Held(sdl.SCANCODE_RIGHT) {
		world.RotateYaw(rotationSpeed)
	}
	if in.Held(sdl.SCANCODE_RIGHT) && !in.Held(sdl.SCANCODE_LEFT) {
		world.RotateYaw(rotationSpeed.Neg())
	}
}
