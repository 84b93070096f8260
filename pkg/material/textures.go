// Package material implements the path tracer's surface models (Diffuse,
// Metal, Dielectric, DiffuseLight) and the textures that feed them color.
package material

import (
	"math"

	"github.com/mravel/pathtracer/pkg/core"
)

// Solid is a constant-color texture.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a Solid texture of the given color.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// Sample ignores the surface coordinates and always returns Color.
func (s *Solid) Sample(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two sub-textures based on the sign of
// sin(frequency*x)*sin(frequency*y)*sin(frequency*z).
type Checker struct {
	Frequency float64
	Odd, Even core.Texture
}

// NewChecker creates a Checker texture over the given odd/even sub-textures.
func NewChecker(frequency float64, odd, even core.Texture) *Checker {
	return &Checker{Frequency: frequency, Odd: odd, Even: even}
}

// Sample picks Odd or Even by the sign of the product of sines.
func (c *Checker) Sample(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Frequency*p.X) * math.Sin(c.Frequency*p.Y) * math.Sin(c.Frequency*p.Z)
	if sines < 0 {
		return c.Odd.Sample(u, v, p)
	}
	return c.Even.Sample(u, v, p)
}

// NoiseMode selects which Perlin-turbulence combination a Noise texture uses.
type NoiseMode int

const (
	// NoiseNormal scales color by 0.5*(1+turbulence), so never below half of color.
	NoiseNormal NoiseMode = iota
	// NoiseMarble warps a sine band by turbulence, producing veined bands.
	NoiseMarble
	// NoiseWood uses the fractional part of turbulence, producing rings.
	NoiseWood
)

// Noise is a procedural texture driven by Perlin turbulence.
type Noise struct {
	Perlin     *core.Perlin
	Color      core.Vec3
	Mode       NoiseMode
	Amplitude  float64
	Frequency  float64
	AmpMul     float64
	FreqMul    float64
	Offset     core.Vec3
	Depth      int
	MarbleAmp  float64
	MarbleFreq float64
}

// NewNoise creates a Noise texture. perlin is shared by reference; callers
// typically build one Perlin table per scene and hand it to every Noise
// texture so turbulence is spatially coherent across surfaces.
func NewNoise(perlin *core.Perlin, color core.Vec3, mode NoiseMode, amplitude, frequency, ampMul, freqMul float64, offset core.Vec3, depth int, marbleAmp, marbleFreq float64) *Noise {
	return &Noise{
		Perlin:     perlin,
		Color:      color,
		Mode:       mode,
		Amplitude:  amplitude,
		Frequency:  frequency,
		AmpMul:     ampMul,
		FreqMul:    freqMul,
		Offset:     offset,
		Depth:      depth,
		MarbleAmp:  marbleAmp,
		MarbleFreq: marbleFreq,
	}
}

// Sample evaluates the configured noise mode at p.
func (n *Noise) Sample(u, v float64, p core.Vec3) core.Vec3 {
	turb := n.Perlin.Turbulence(p.Add(n.Offset), n.Depth, n.Amplitude, n.Frequency, n.AmpMul, n.FreqMul)

	switch n.Mode {
	case NoiseMarble:
		factor := 0.5 * (1 + n.MarbleAmp*math.Sin(p.Z+n.MarbleFreq*turb))
		return n.Color.Multiply(factor)
	case NoiseWood:
		_, frac := math.Modf(turb)
		if frac < 0 {
			frac += 1
		}
		return n.Color.Multiply(0.5 * (1 + frac))
	default:
		return n.Color.Multiply(0.5 * (1 + turb))
	}
}

// Image samples a decoded RGB(A) image with nearest-neighbor lookup; v is
// flipped so (u=0,v=0) addresses the bottom-left texel.
type Image struct {
	Pixels        []byte // row-major RGB triples, top-to-bottom
	Width, Height int
	Name          string // scene-file image name this was loaded from, for Save round-trips
}

// NewImage wraps a decoded image's raw RGB byte buffer. The caller is
// responsible for decoding (stdlib image/png, image/jpeg, or
// golang.org/x/image/bmp) and flattening to top-to-bottom RGB triples.
func NewImage(pixels []byte, width, height int, name string) *Image {
	return &Image{Pixels: pixels, Width: width, Height: height, Name: name}
}

// Sample returns the nearest texel to (u, v) as a color in [0,1].
func (img *Image) Sample(u, v float64, p core.Vec3) core.Vec3 {
	if img.Width == 0 || img.Height == 0 {
		return core.Vec3{}
	}

	i := clampInt(int(u*float64(img.Width)), 0, img.Width-1)
	j := clampInt(int((1-v)*float64(img.Height)-1e-6), 0, img.Height-1)

	offset := (j*img.Width + i) * 3
	if offset+2 >= len(img.Pixels) {
		return core.Vec3{}
	}
	const scale = 1.0 / 255.0
	return core.Vec3{
		X: float64(img.Pixels[offset]) * scale,
		Y: float64(img.Pixels[offset+1]) * scale,
		Z: float64(img.Pixels[offset+2]) * scale,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
