package renderer

import (
	"math"
	"sync/atomic"

	"github.com/mravel/pathtracer/pkg/core"
)

// pixelSample is one accumulator slot: the running sum of every sample's
// color plus how many samples contributed to it. Only the worker that
// owns a pixel's stripe ever writes to its slot, so no lock is needed.
type pixelSample struct {
	sumR, sumG, sumB float64
	count            int64
}

// Accumulator is the HDR sample buffer the progressive sampler writes
// into and the display reads from. Size is fixed at construction; a
// restart clears it in place rather than reallocating.
type Accumulator struct {
	Width, Height int
	pixels        []pixelSample
}

// NewAccumulator creates a zeroed accumulator sized for width*height pixels.
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{
		Width:  width,
		Height: height,
		pixels: make([]pixelSample, width*height),
	}
}

// Replace overwrites pixel i with a single fresh sample, used for a
// worker's first write to a pixel in a new epoch (after a restart).
func (a *Accumulator) Replace(i int, color core.Vec3) {
	a.pixels[i] = pixelSample{sumR: color.X, sumG: color.Y, sumB: color.Z, count: 1}
}

// Accumulate adds one more sample to pixel i's running sum.
func (a *Accumulator) Accumulate(i int, color core.Vec3) {
	p := &a.pixels[i]
	p.sumR += color.X
	p.sumG += color.Y
	p.sumB += color.Z
	atomic.AddInt64(&p.count, 1)
}

// Count returns the number of samples accumulated at pixel i.
func (a *Accumulator) Count(i int) int64 {
	return atomic.LoadInt64(&a.pixels[i].count)
}

// Color returns the gamma-corrected, clamped display color at pixel i:
// sqrt(sum/count) clamped to [0,1]. A pixel with zero samples is black.
func (a *Accumulator) Color(i int) core.Vec3 {
	p := &a.pixels[i]
	count := atomic.LoadInt64(&p.count)
	if count == 0 {
		return core.Vec3{}
	}
	n := float64(count)
	avg := core.Vec3{X: p.sumR / n, Y: p.sumG / n, Z: p.sumB / n}
	gamma := core.Vec3{X: math.Sqrt(math.Max(0, avg.X)), Y: math.Sqrt(math.Max(0, avg.Y)), Z: math.Sqrt(math.Max(0, avg.Z))}
	return gamma.Clamp(0, 1)
}

// Bytes returns the pixel's display color as 8-bit RGB, matching the
// frame-buffer/PPM convention of scaling by 255.99 before truncation.
func (a *Accumulator) Bytes(i int) (r, g, b byte) {
	c := a.Color(i)
	return byte(c.X * 255.99), byte(c.Y * 255.99), byte(c.Z * 255.99)
}

// Reset clears every pixel's sum and count in place.
func (a *Accumulator) Reset() {
	for i := range a.pixels {
		a.pixels[i] = pixelSample{}
	}
}

// Len returns the number of pixel slots (Width*Height).
func (a *Accumulator) Len() int {
	return len(a.pixels)
}
