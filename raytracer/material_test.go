package raytracer

import (
	"math"
	"testing"

	"github.com/gorender/raytracer/colour"
	"github.com/gorender/raytracer/geom"
)

func TestSolidShadeIgnoresScene(t *testing.T) {
	s := Solid{Color: colour.Color{R: 0.2, G: 0.4, B: 0.6}}
	w := NewWorld()
	if got := s.Shade(Hit{}, w, 0); got != s.Color {
		t.Fatalf("Solid.Shade = %v, want %v", got, s.Color)
	}
}

func TestSolidEqualDeduplicatesByColorOnly(t *testing.T) {
	a := Solid{Color: colour.Color{R: 1}}
	b := Solid{Color: colour.Color{R: 1}}
	c := Solid{Color: colour.Color{R: 0.5}}
	if !a.equal(b) {
		t.Fatal("expected identical colors to be equal")
	}
	if a.equal(c) {
		t.Fatal("expected different colors to not be equal")
	}
}

func TestLambertShadeNoLightsIsBlack(t *testing.T) {
	l := Lambert{Color: colour.White, DiffuseReflectance: 1}
	w := NewWorld()
	hit := Hit{Origin: geom.Vector{X: 0, Y: 0, Z: 0}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
	if got := l.Shade(hit, w, 0); got != colour.Black {
		t.Fatalf("Shade with no lights = %v, want black (no ambient term)", got)
	}
}

func TestLambertShadeUnoccludedLight(t *testing.T) {
	l := Lambert{Color: colour.White, DiffuseReflectance: 1}
	w := NewWorld()
	w.AddLight(PointLight{Position: geom.Vector{X: 0, Y: 0, Z: -10}, Color: colour.White})

	hit := Hit{Origin: geom.Vector{X: 0, Y: 0, Z: 0}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
	got := l.Shade(hit, w, 0)
	if got.R <= 0 {
		t.Fatalf("expected a lit surface to receive positive radiance, got %v", got)
	}
}

func TestLambertShadeOccludedLightContributesNothing(t *testing.T) {
	l := Lambert{Color: colour.White, DiffuseReflectance: 1}
	w := NewWorld()
	w.AddLight(PointLight{Position: geom.Vector{X: 0, Y: 0, Z: -10}, Color: colour.White})
	// An opaque blocker sitting directly between the shaded point and the light.
	w.AddSphere(Sphere{Center: geom.Vector{X: 0, Y: 0, Z: -5}, Radius: 1}, Solid{})

	hit := Hit{Origin: geom.Vector{X: 0, Y: 0, Z: 0}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
	if got := l.Shade(hit, w, 0); got != colour.Black {
		t.Fatalf("expected a shadowed light to contribute nothing, got %v", got)
	}
}

func TestLambertShadeShadowsDisabledIgnoresOcclusion(t *testing.T) {
	l := Lambert{Color: colour.White, DiffuseReflectance: 1}
	w := NewWorld()
	w.SetShadows(false)
	w.AddLight(PointLight{Position: geom.Vector{X: 0, Y: 0, Z: -10}, Color: colour.White})
	w.AddSphere(Sphere{Center: geom.Vector{X: 0, Y: 0, Z: -5}, Radius: 1}, Solid{})

	hit := Hit{Origin: geom.Vector{X: 0, Y: 0, Z: 0}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
	if got := l.Shade(hit, w, 0); got.R <= 0 {
		t.Fatal("expected light to contribute when shadows are disabled, even with a blocker present")
	}
}

func bsdfTestHit() Hit {
	return Hit{Origin: geom.Vector{X: 0, Y: 0, Z: 0}, Normal: geom.Vector{X: 0, Y: 0, Z: -1}}
}

func bsdfTestWorld(mode BsdfMode) *World {
	w := NewWorld()
	w.SetBsdfMode(mode)
	w.cameraPosition = geom.Vector{X: 0, Y: 0, Z: -2}
	w.AddLight(PointLight{Position: geom.Vector{X: 1, Y: 1, Z: -3}, Color: colour.White})
	return w
}

func TestBsdfShadeDiffuseModeIsolatesLambertTerm(t *testing.T) {
	b := Bsdf{Color: colour.Color{R: 1, G: 1, B: 1}, Roughness: 0.5, Metallic: 0}
	w := bsdfTestWorld(Diffuse)
	got := b.Shade(bsdfTestHit(), w, 0)
	if got.R <= 0 {
		t.Fatalf("expected Diffuse mode to report a positive lambert term, got %v", got)
	}
}

func TestBsdfShadeFresnelModeStaysWithinUnitRange(t *testing.T) {
	b := Bsdf{Color: colour.Color{R: 0.8, G: 0.2, B: 0.2}, Roughness: 0.3, Metallic: 1}
	w := bsdfTestWorld(Fresnel)
	got := b.Shade(bsdfTestHit(), w, 0)
	for _, c := range []float64{got.R, got.G, got.B} {
		if c < 0 || c > 1.0001 {
			t.Fatalf("Fresnel term %v out of expected [0,1] range", got)
		}
	}
}

func TestBsdfShadeNormalDistributionIsGrayscale(t *testing.T) {
	b := Bsdf{Color: colour.Color{R: 1, G: 0, B: 0}, Roughness: 0.4, Metallic: 0}
	w := bsdfTestWorld(NormalDistribution)
	got := b.Shade(bsdfTestHit(), w, 0)
	if got.R != got.G || got.G != got.B {
		t.Fatalf("expected the raw normal-distribution debug term to be grayscale, got %v", got)
	}
}

func TestBsdfShadeAddsEmissiveRegardlessOfMode(t *testing.T) {
	b := Bsdf{Color: colour.Black, Emissive: colour.Color{R: 5, G: 5, B: 5}, Roughness: 1, Metallic: 0}
	w := bsdfTestWorld(Default)
	got := b.Shade(bsdfTestHit(), w, 0)
	if got.R < 5 || got.G < 5 || got.B < 5 {
		t.Fatalf("expected emissive contribution to always be added, got %v", got)
	}
}

func TestBsdfShadeSkipsReflectionWhenNotMetallic(t *testing.T) {
	b := Bsdf{Color: colour.Color{R: 1, G: 1, B: 1}, Roughness: 0.5, Metallic: 0}
	w := bsdfTestWorld(Default)
	w.SetBackgroundColor(colour.Color{R: 9, G: 9, B: 9})
	got := b.Shade(bsdfTestHit(), w, 0)
	if got.R >= 9 {
		t.Fatal("expected no reflection contribution for a fully non-metallic material")
	}
}

func TestBsdfShadeSkipsReflectionPastDepthLimit(t *testing.T) {
	b := Bsdf{Color: colour.Color{R: 1, G: 1, B: 1}, Roughness: 0, Metallic: 1}
	w := bsdfTestWorld(Default)
	w.SetBackgroundColor(colour.Color{R: 9, G: 9, B: 9})

	shallow := b.Shade(bsdfTestHit(), w, 0)
	deep := b.Shade(bsdfTestHit(), w, 4)

	if deep.R >= shallow.R {
		t.Fatal("expected reflection contribution to stop once depth reaches the recursion limit")
	}
}

func TestBsdfShadeAddsIndirectLightOnlyWhenGiSimple(t *testing.T) {
	b := Bsdf{Color: colour.White, Roughness: 1, Metallic: 0}
	w := bsdfTestWorld(Default)
	w.SetBackgroundColor(colour.Color{R: 0.5, G: 0.5, B: 0.5})

	without := b.Shade(bsdfTestHit(), w, 0)
	w.SetGiMode(GiSimple)
	with := b.Shade(bsdfTestHit(), w, 0)

	if with.R <= without.R {
		t.Fatal("expected GiSimple to add a strictly positive indirect contribution against a lit background")
	}
}

func TestBsdfShadeSkipsIndirectLightPastDepthLimit(t *testing.T) {
	b := Bsdf{Color: colour.White, Roughness: 1, Metallic: 0}
	w := bsdfTestWorld(Default)
	w.SetGiMode(GiSimple)
	w.SetBackgroundColor(colour.Color{R: 0.5, G: 0.5, B: 0.5})

	atDepthZero := b.Shade(bsdfTestHit(), w, 0)
	atDepthOne := b.Shade(bsdfTestHit(), w, 1)

	if atDepthOne.R >= atDepthZero.R {
		t.Fatal("expected the indirect-light pass to stop firing once depth reaches its limit")
	}
}

func TestOrthonormalBasisIsPerpendicularToNormal(t *testing.T) {
	normals := []geom.Vector{
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0.5774, Y: 0.5774, Z: 0.5774},
	}
	for _, n := range normals {
		n = n.Norm()
		tangent, bitangent := orthonormalBasis(n)
		if math.Abs(tangent.Dot(n)) > 1e-6 {
			t.Fatalf("tangent %v not perpendicular to normal %v", tangent, n)
		}
		if math.Abs(bitangent.Dot(n)) > 1e-6 {
			t.Fatalf("bitangent %v not perpendicular to normal %v", bitangent, n)
		}
		if math.Abs(tangent.Dot(bitangent)) > 1e-6 {
			t.Fatalf("tangent %v and bitangent %v not perpendicular to each other", tangent, bitangent)
		}
	}
}

func TestBsdfModeCycleWrapsAfterMicrofacets(t *testing.T) {
	if Microfacets.Cycle() != Default {
		t.Fatalf("Microfacets.Cycle() = %v, want Default", Microfacets.Cycle())
	}
	seen := map[BsdfMode]bool{}
	m := Default
	for i := 0; i < 6; i++ {
		seen[m] = true
		m = m.Cycle()
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct modes visited, got %d", len(seen))
	}
	if m != Default {
		t.Fatal("expected cycling 6 times to return to Default")
	}
}

func TestGiModeCycleToggles(t *testing.T) {
	if GiNone.Cycle() != GiSimple {
		t.Fatal("expected GiNone.Cycle() == GiSimple")
	}
	if GiSimple.Cycle() != GiNone {
		t.Fatal("expected GiSimple.Cycle() == GiNone")
	}
}
