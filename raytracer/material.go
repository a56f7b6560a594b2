package raytracer

import (
	"math"

	"github.com/gorender/raytracer/colour"
	"github.com/gorender/raytracer/geom"
)

// Material shades a ray-object intersection, recursing into World.CastRay
// for shadow, reflection, or indirect-light rays as its recipe requires.
// depth bounds that recursion.
type Material interface {
	Shade(hit Hit, world *World, depth int) colour.Color

	// equal reports structural equality with another material of the same
	// concrete type, used by World.addMaterial to deduplicate by value.
	equal(other Material) bool
}

// Solid always shades to a constant color, ignoring the scene entirely.
type Solid struct {
	Color colour.Color
}

func (s Solid) Shade(Hit, *World, int) colour.Color { return s.Color }

func (s Solid) equal(other Material) bool {
	o, ok := other.(Solid)
	return ok && o.Color == s.Color
}

// Lambert is a diffuse-only material: each light contributes
// max(0, N.L) * lightColor * color * diffuseReflectance, shadow-tested
// when the world has shadows enabled. There is no ambient term.
type Lambert struct {
	Color              colour.Color
	DiffuseReflectance float64
}

func (l Lambert) equal(other Material) bool {
	o, ok := other.(Lambert)
	return ok && o.Color == l.Color && o.DiffuseReflectance == l.DiffuseReflectance
}

const shadowBias = 0.001

func (l Lambert) Shade(hit Hit, world *World, depth int) colour.Color {
	out := colour.Black

	for _, light := range world.Lights() {
		toLight := light.Position.Sub(hit.Origin)
		distanceToLight := toLight.Len()
		lightDir := toLight.Norm()

		if world.Shadows() {
			shadowOrigin := hit.Origin.Add(hit.Normal.Norm().Scale(shadowBias))
			if shadowHit, ok := world.CastRay(shadowOrigin, lightDir); ok && shadowHit.Distance < distanceToLight {
				continue
			}
		}

		ndotl := math.Max(0, hit.Normal.Dot(lightDir))
		diffuse := light.Color.Mul(l.Color).Scale(ndotl)
		out = out.Add(diffuse.Scale(l.DiffuseReflectance))
	}

	return out
}

// BsdfMode selects which intermediate quantity of the Cook-Torrance
// recipe Bsdf.Shade accumulates, for debugging the model term by term.
type BsdfMode int

const (
	Default BsdfMode = iota
	Diffuse
	CookTorrance
	Fresnel
	NormalDistribution
	Microfacets
)

// Cycle returns the next mode in display order, wrapping after
// Microfacets.
func (m BsdfMode) Cycle() BsdfMode {
	if m == Microfacets {
		return Default
	}
	return m + 1
}

// GiMode selects whether Bsdf.Shade adds an indirect-light pass.
type GiMode int

const (
	GiNone GiMode = iota
	GiSimple
)

// Cycle returns the next GI mode in display order.
func (m GiMode) Cycle() GiMode {
	if m == GiSimple {
		return GiNone
	}
	return GiSimple
}

// Bsdf is a metallic-roughness Cook-Torrance material with an optional
// mirror reflection pass and an optional single-bounce indirect-light pass.
type Bsdf struct {
	Color     colour.Color
	Emissive  colour.Color
	Roughness float64
	Metallic  float64
}

func (b Bsdf) equal(other Material) bool {
	o, ok := other.(Bsdf)
	return ok && o.Color == b.Color && o.Emissive == b.Emissive && o.Roughness == b.Roughness && o.Metallic == b.Metallic
}

func clamp01f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func mixColor(a, b colour.Color, t float64) colour.Color {
	return colour.Mix(a, b, t)
}

func schlickFresnel(baseReflectivity colour.Color, cosTheta float64) colour.Color {
	f := math.Pow(1-clamp01f(cosTheta), 5)
	return baseReflectivity.Add(colour.White.Sub(baseReflectivity).Scale(f))
}

func (b Bsdf) Shade(hit Hit, world *World, depth int) colour.Color {
	baseColor := b.Color
	roughness := b.Roughness * b.Roughness

	out := colour.Black
	baseReflectivity := mixColor(colour.Color{R: 0.04, G: 0.04, B: 0.04}, baseColor, b.Metallic)
	viewDirection := world.CameraPosition().Sub(hit.Origin).Norm()

	for _, light := range world.Lights() {
		lightDirection := light.Position.Sub(hit.Origin).Norm()
		half := viewDirection.Add(lightDirection).Norm()

		ndoth := hit.Normal.Dot(half)
		alpha2 := roughness * roughness
		denom := ndoth*ndoth*(alpha2-1) + 1
		normalDistribution := alpha2 / (math.Pi * denom * denom)

		fresnel := schlickFresnel(baseReflectivity, half.Dot(viewDirection))

		directK := (roughness + 1) * (roughness + 1) / 8
		ndotv := clamp01f(hit.Normal.Dot(viewDirection))
		ndotl := clamp01f(hit.Normal.Dot(lightDirection))
		microfacets := (ndotv / math.Max(0.001, ndotv*(1-directK)+directK)) *
			(ndotl / math.Max(0.001, ndotl*(1-directK)+directK))

		cookTorrance := fresnel.Scale(normalDistribution * microfacets).
			Scale(1 / (4 * viewDirection.Dot(hit.Normal) * lightDirection.Dot(hit.Normal)))

		lambertDiffuse := light.Color.Mul(baseColor).Scale(math.Max(0, hit.Normal.Dot(lightDirection)))
		diffuseReflectance := colour.White.Sub(fresnel).Scale(1 - b.Metallic)

		switch world.BsdfMode() {
		case Diffuse:
			out = out.Add(lambertDiffuse)
		case CookTorrance:
			out = out.Add(cookTorrance)
		case Fresnel:
			out = out.Add(fresnel)
		case NormalDistribution:
			out = out.Add(colour.Color{R: normalDistribution, G: normalDistribution, B: normalDistribution})
		case Microfacets:
			out = out.Add(colour.Color{R: microfacets, G: microfacets, B: microfacets})
		default:
			out = out.Add(diffuseReflectance.Mul(lambertDiffuse)).
				Add(cookTorrance.Mul(light.Color).Scale(ndotl))
		}
	}

	if depth < 4 && b.Metallic > 0 && (1-roughness) > 0.001 {
		reflectDirection := viewDirection.Scale(-1).Add(hit.Normal.Scale(2 * viewDirection.Dot(hit.Normal))).Norm()
		reflectOrigin := hit.Origin.Add(hit.Normal.Scale(shadowBias))
		reflectionStrength := 1 - roughness

		if nextHit, ok := world.CastRay(reflectOrigin, reflectDirection); ok {
			reflectedColor := world.MaterialAt(nextHit.MaterialIndex).Shade(nextHit, world, depth+1)
			specular := reflectedColor.Mul(schlickFresnel(baseReflectivity, hit.Normal.Dot(viewDirection))).
				Mul(mixColor(colour.White, baseColor, b.Metallic))
			out = out.Add(specular.Scale(b.Metallic * reflectionStrength))
		} else {
			specular := world.BackgroundColor().Mul(schlickFresnel(baseReflectivity, hit.Normal.Dot(viewDirection))).
				Mul(mixColor(colour.White, baseColor, b.Metallic))
			out = out.Add(specular.Scale(b.Metallic * reflectionStrength))
		}
	}

	if world.GiMode() == GiSimple && depth < 1 {
		out = out.Add(b.indirectLight(hit, world, depth))
	}

	out = out.Add(b.Emissive)

	return out
}

// giRings and giSamplesPerRing fix the indirect-light pass at 32*32 = 1024
// deterministic stratified samples per shaded point, so repeated renders of
// a static scene stay bit-identical.
const (
	giRings          = 32
	giSamplesPerRing = 32
)

// indirectLight estimates one bounce of diffuse indirect light by casting a
// deterministic, stratified, cosine-weighted set of rays over the hemisphere
// above hit.Normal and averaging what they return. A sample that hits
// contributes albedo * bounce color * max(0, dir.N), clamped to 1 per
// channel; a sample that misses contributes albedo * background color. The
// sum is divided by the sample count.
func (b Bsdf) indirectLight(hit Hit, world *World, depth int) colour.Color {
	tangent, bitangent := orthonormalBasis(hit.Normal)
	origin := hit.Origin.Add(hit.Normal.Scale(shadowBias))
	alpha := b.Roughness * b.Roughness

	sum := colour.Black
	sampleCount := giRings * giSamplesPerRing

	for ring := 0; ring < giRings; ring++ {
		for sample := 0; sample < giSamplesPerRing; sample++ {
			u := (float64(ring) + 0.5) / giRings
			v := (float64(sample) + 0.5) / giSamplesPerRing

			// Cosine-weighted hemisphere sample, its disk radius biased by
			// alpha so rougher surfaces spread their bounce directions
			// further from the normal while smooth ones stay concentrated
			// near it.
			r := math.Sqrt(u * alpha)
			theta := 2 * math.Pi * v

			x := r * math.Cos(theta)
			y := r * math.Sin(theta)
			z := math.Sqrt(math.Max(0, 1-r*r))

			dir := tangent.Scale(x).Add(bitangent.Scale(y)).Add(hit.Normal.Scale(z)).Norm()
			ndotl := math.Max(0, dir.Dot(hit.Normal))

			if sampleHit, ok := world.CastRay(origin, dir); ok {
				bounceColor := world.MaterialAt(sampleHit.MaterialIndex).Shade(sampleHit, world, depth+1)
				sum = sum.Add(b.Color.Mul(bounceColor).Scale(ndotl).Clamp01())
			} else {
				sum = sum.Add(b.Color.Mul(world.BackgroundColor()).Clamp01())
			}
		}
	}

	return sum.Scale(1 / float64(sampleCount))
}

// orthonormalBasis builds an arbitrary tangent/bitangent pair perpendicular
// to n, using the smallest-component trick to avoid a degenerate cross
// product when n is near an axis.
func orthonormalBasis(n geom.Vector) (tangent, bitangent geom.Vector) {
	up := geom.Vector{X: 0, Y: 1, Z: 0}
	if math.Abs(n.Y) > 0.99 {
		up = geom.Vector{X: 1, Y: 0, Z: 0}
	}
	tangent = up.Cross(n).Norm()
	bitangent = n.Cross(tangent)
	return tangent, bitangent
}
