package renderer

import (
	"runtime"

	"github.com/mravel/pathtracer/pkg/core"
)

// Renderer bundles everything a progressive render needs: the camera,
// the current BVH, and the shared accumulator. It exposes exactly the
// three surfaces spec describes for an external UI to use — reading the
// frame buffer, mutating the scene and restarting, and the camera
// struct — without owning any display or input handling itself.
type Renderer struct {
	Width, Height int
	Camera        *Camera
	Accumulator   *Accumulator
	Sampler       *ProgressiveSampler

	entities *core.EntityList
}

// Config configures a new Renderer.
type Config struct {
	Width, Height                   int
	NumWorkers                      int // 0 = runtime.NumCPU()
	MaxDepth                        int // 0 = integrator.DefaultMaxDepth
	BackgroundBottom, BackgroundTop core.Vec3
	Seed                            uint64
	Logger                          core.Logger
}

// NewRenderer creates a Renderer with a fresh accumulator and sampler,
// but no world yet; call Restart after populating Entities to begin
// rendering.
func NewRenderer(cam *Camera, cfg Config) *Renderer {
	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 50
	}

	acc := NewAccumulator(cfg.Width, cfg.Height)
	sampler := NewProgressiveSampler(acc, cam, numWorkers, maxDepth,
		[2]core.Vec3{cfg.BackgroundBottom, cfg.BackgroundTop}, cfg.Logger, cfg.Seed)

	return &Renderer{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Camera:      cam,
		Accumulator: acc,
		Sampler:     sampler,
		entities:    core.NewEntityList(0),
	}
}

// Entities returns the renderer's owned entity list. Callers mutate it
// directly, then call Restart to rebuild the BVH and resume sampling.
func (r *Renderer) Entities() *core.EntityList {
	return r.entities
}

// Restart rebuilds the BVH from the current entity list and restarts
// the sampler. This is the scene-mutation hook spec.md's C9 calls for:
// the old BVH and any in-flight workers are dropped, a new BVH is built,
// and workers resume in a fresh epoch.
func (r *Renderer) Restart(rng *core.RNG) {
	r.Camera.Update()
	world := core.NewBVH(r.entities, rng)
	r.Sampler.Restart(world)
}

// Stop halts the sampler's workers without tearing down the renderer.
func (r *Renderer) Stop() {
	r.Sampler.Stop()
}

// FrameBuffer returns, row-major with (0,0) at the bottom-left per
// spec.md's frame-buffer protocol, the current 8-bit RGB display buffer.
func (r *Renderer) FrameBuffer() []byte {
	buf := make([]byte, r.Width*r.Height*3)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			i := y*r.Width + x
			red, green, blue := r.Accumulator.Bytes(i)
			o := i * 3
			buf[o], buf[o+1], buf[o+2] = red, green, blue
		}
	}
	return buf
}
