package material

import (
	"math"

	"github.com/mravel/pathtracer/pkg/core"
)

// Lambertian is an ideal diffuse surface: it always scatters, toward a
// point offset from the hit normal by a random point in the unit sphere.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a diffuse material sampling color from albedo.
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always succeeds, producing a cosine-weighted-ish diffuse bounce.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(rng.RandomInUnitSphere())
	scattered := core.NewRay(hit.Point, target.Subtract(hit.Point))
	attenuation := l.Albedo.Sample(hit.U, hit.V, hit.Point)
	return core.ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// Emit returns zero; Lambertian surfaces do not emit light.
func (l *Lambertian) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Metal is a (possibly fuzzy) mirror.
type Metal struct {
	Albedo    core.Texture
	Fuzziness float64
}

// NewMetal creates a Metal material; fuzziness is clamped to [0,1].
func NewMetal(albedo core.Texture, fuzziness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzziness: math.Max(0, math.Min(1, fuzziness))}
}

// Scatter reflects rayIn about hit.Normal, perturbed by Fuzziness, and
// only counts as a scatter if the result still points away from the
// surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	direction := reflected
	if m.Fuzziness > 0 {
		direction = reflected.Add(rng.RandomInUnitSphere().Multiply(m.Fuzziness))
	}
	scattered := core.NewRay(hit.Point, direction)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}
	attenuation := m.Albedo.Sample(hit.U, hit.V, hit.Point)
	return core.ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// Emit returns zero; Metal surfaces do not emit light.
func (m *Metal) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Dielectric is a refractive surface (glass, water, ...) that mixes
// refraction and Fresnel reflection via Schlick's approximation.
type Dielectric struct {
	RefractiveIndex float64
	Albedo          core.Texture
}

// NewDielectric creates a Dielectric material. refractiveIndex is
// expected in [1,3] per the scene format's documented range; values
// outside that range are accepted as given rather than silently clamped,
// since a degenerate index is a scene-authoring error, not a runtime
// condition to paper over.
func NewDielectric(refractiveIndex float64, albedo core.Texture) *Dielectric {
	if albedo == nil {
		albedo = NewSolid(core.Vec3{X: 1, Y: 1, Z: 1})
	}
	return &Dielectric{RefractiveIndex: refractiveIndex, Albedo: albedo}
}

// Scatter always succeeds: it chooses between refraction and Fresnel
// reflection by sampling a uniform random variable against the Schlick
// reflectance for the incidence angle.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	attenuation := d.Albedo.Sample(hit.U, hit.V, hit.Point)

	var outwardNormal core.Vec3
	var refractionRatio float64
	unitDirection := rayIn.Direction.Normalize()
	cosine := unitDirection.Dot(hit.Normal)

	if cosine > 0 {
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
	} else {
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -cosine
	}

	refracted, didRefract := core.Refract(unitDirection, outwardNormal, refractionRatio)

	reflectProbability := 1.0
	if didRefract {
		reflectProbability = core.Schlick(cosine, d.RefractiveIndex)
	}

	if rng.Float64() < reflectProbability {
		reflected := core.Reflect(unitDirection, hit.Normal)
		return core.ScatterResult{Attenuation: attenuation, Scattered: core.NewRay(hit.Point, reflected)}, true
	}
	return core.ScatterResult{Attenuation: attenuation, Scattered: core.NewRay(hit.Point, refracted)}, true
}

// Emit returns zero; Dielectric surfaces do not emit light.
func (d *Dielectric) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// DiffuseLight is an emissive material; it never scatters.
type DiffuseLight struct {
	Emission core.Texture
	Power    float64
}

// NewDiffuseLight creates a DiffuseLight material emitting power*emission.Sample(...).
func NewDiffuseLight(emission core.Texture, power float64) *DiffuseLight {
	return &DiffuseLight{Emission: emission, Power: power}
}

// Scatter never succeeds; light surfaces absorb whatever hits them.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns Power times the emission texture sampled at (u,v,p).
func (d *DiffuseLight) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emission.Sample(u, v, p).Multiply(d.Power)
}
