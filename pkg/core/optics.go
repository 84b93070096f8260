package core

import "math"

// Reflect reflects v about a unit normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends unit vector v through a surface with unit normal n
// (pointing against v) given the ratio of refractive indices
// etaIOverEtaT = eta_incident / eta_transmitted. The second return value
// is false on total internal reflection, in which case the first return
// value is the zero vector.
func Refract(v, n Vec3, etaIOverEtaT float64) (Vec3, bool) {
	uv := v.Normalize()
	cosTheta := math.Min(uv.Negate().Dot(n), 1)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaIOverEtaT)
	perpLenSq := rOutPerp.LengthSquared()
	if perpLenSq > 1 {
		return Vec3{}, false
	}
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1 - perpLenSq)))
	return rOutPerp.Add(rOutParallel), true
}

// Schlick approximates the Fresnel reflectance for a dielectric surface
// at the given cosine of the incidence angle and the material's
// refractive index, increasing monotonically as cosine moves away from
// normal incidence.
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
