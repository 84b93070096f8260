package renderer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/mravel/pathtracer/pkg/core"
	"github.com/mravel/pathtracer/pkg/integrator"
)

// ProgressiveSampler runs one goroutine per worker, each owning a fixed
// stripe of pixels (index mod NumWorkers) and adding one fresh sample to
// every pixel in its stripe per epoch. A restart bumps an atomic
// generation counter; workers observe the new generation, treat their
// next write per pixel as a replace rather than an accumulate, and the
// controller never has to wait for an in-flight epoch to finish.
type ProgressiveSampler struct {
	Accumulator *Accumulator
	Camera      *Camera
	NumWorkers  int
	MaxDepth    int
	Background  [2]core.Vec3 // [bottom, top]
	Logger      core.Logger
	Seed        uint64 // base RNG seed; each worker gets its own stream

	world      atomic.Pointer[core.Entity]
	generation atomic.Uint64
	wg         sync.WaitGroup
	stats      []RenderStats
	statsMu    sync.Mutex
}

// NewProgressiveSampler creates a sampler over the given accumulator and
// camera. World starts nil; call Restart to supply the first BVH and
// begin rendering.
func NewProgressiveSampler(acc *Accumulator, cam *Camera, numWorkers, maxDepth int, background [2]core.Vec3, logger core.Logger, seed uint64) *ProgressiveSampler {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &ProgressiveSampler{
		Accumulator: acc,
		Camera:      cam,
		NumWorkers:  numWorkers,
		MaxDepth:    maxDepth,
		Background:  background,
		Logger:      logger,
		Seed:        seed,
	}
}

// Restart atomically replaces the world the sampler renders against,
// clears the accumulator, and (re)starts every worker in a fresh epoch.
// Workers from the previous generation observe the bumped counter and
// exit on their next pixel boundary; Restart waits for them before
// spawning their replacements, so there is never more than NumWorkers
// goroutines in flight.
func (s *ProgressiveSampler) Restart(world core.Entity) {
	s.stop()
	s.world.Store(&world)
	s.Accumulator.Reset()
	s.generation.Add(1)
	s.start()
}

// Stop halts all workers and waits for them to exit. The accumulator is
// left as-is so its last state can still be read.
func (s *ProgressiveSampler) Stop() {
	s.stop()
}

func (s *ProgressiveSampler) stop() {
	s.generation.Add(1)
	s.wg.Wait()
}

func (s *ProgressiveSampler) start() {
	gen := s.generation.Load()
	s.stats = make([]RenderStats, s.NumWorkers)
	for k := 0; k < s.NumWorkers; k++ {
		s.wg.Add(1)
		go s.runWorker(k, gen)
	}
}

func (s *ProgressiveSampler) runWorker(workerIndex int, myGeneration uint64) {
	defer s.wg.Done()

	worldPtr := s.world.Load()
	if worldPtr == nil {
		return
	}
	world := *worldPtr
	rng := core.NewRNG(s.Seed, uint64(workerIndex)+1)
	tracer := integrator.NewPathTracer(world, rng, s.Background[0], s.Background[1])
	tracer.MaxDepth = s.MaxDepth

	width, height := s.Accumulator.Width, s.Accumulator.Height
	total := width * height
	if total == 0 || workerIndex >= total {
		return
	}

	cursor := workerIndex
	epoch := 1
	var samples int64
	start := time.Now()

	for {
		if s.generation.Load() != myGeneration {
			break
		}

		x := cursor % width
		y := cursor / width
		u := (float64(x) + rng.Float64()) / float64(width)
		v := (float64(y) + rng.Float64()) / float64(height)

		ray := s.Camera.Ray(u, v, rng)
		color := tracer.Cast(ray, 0)

		if epoch == 1 {
			s.Accumulator.Replace(cursor, color)
		} else {
			s.Accumulator.Accumulate(cursor, color)
		}
		samples++

		cursor += s.NumWorkers
		if cursor >= total {
			cursor -= total
			epoch++
		}
	}

	s.recordStats(workerIndex, NewRenderStats(workerIndex, samples, time.Since(start)))
}

func (s *ProgressiveSampler) recordStats(workerIndex int, stats RenderStats) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	if workerIndex < len(s.stats) {
		s.stats[workerIndex] = stats
	}
}

// Stats returns the most recent completed worker statistics, populated
// once each worker observes a generation change and exits.
func (s *ProgressiveSampler) Stats() []RenderStats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return append([]RenderStats(nil), s.stats...)
}
