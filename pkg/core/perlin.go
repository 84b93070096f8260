package core

import "math"

const perlinPointCount = 256

// Perlin provides gradient noise and turbulence for procedural textures.
// It owns three permutation tables (one per axis) and a table of
// precomputed unit gradient vectors, built once and reused for every
// sample.
type Perlin struct {
	randVec [perlinPointCount]Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a Perlin noise generator from the given RNG stream.
func NewPerlin(rng *RNG) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = rng.RandomUnitVector()
	}
	p.permX = perlinGeneratePerm(rng)
	p.permY = perlinGeneratePerm(rng)
	p.permZ = perlinGeneratePerm(rng)
	return p
}

func perlinGeneratePerm(rng *RNG) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := int(rng.Range(0, float64(i+1)))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Noise samples gradient noise at p: it gathers the 8 lattice gradients
// surrounding p (indexed by XOR of the three permuted axis indices) and
// blends them with a Hermite-smoothed trilinear interpolation.
func (p *Perlin) Noise(pt Vec3) float64 {
	u := pt.X - math.Floor(pt.X)
	v := pt.Y - math.Floor(pt.Y)
	w := pt.Z - math.Floor(pt.Z)

	i := int(math.Floor(pt.X))
	j := int(math.Floor(pt.Y))
	k := int(math.Floor(pt.Z))

	var c [2][2][2]Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return perlinInterpolate(c, u, v, w)
}

func perlinInterpolate(c [2][2][2]Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	sum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := Vec3{u - float64(i), v - float64(j), w - float64(k)}
				fi, fj, fk := float64(i), float64(j), float64(k)
				sum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return sum
}

// Turbulence sums depth octaves of noise at p, each octave scaling the
// sample point by frequency and the contribution by amplitude, then
// multiplying both by their respective per-octave factors; returns the
// absolute value of the accumulated sum.
func (p *Perlin) Turbulence(pt Vec3, depth int, amplitude, frequency, ampMul, freqMul float64) float64 {
	sum := 0.0
	for i := 0; i < depth; i++ {
		sum += amplitude * p.Noise(pt.Multiply(frequency))
		amplitude *= ampMul
		frequency *= freqMul
	}
	return math.Abs(sum)
}
