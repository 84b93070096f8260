// Command pathtracer renders a scene progressively to a PPM screenshot,
// either from a built-in demo scene or a scene text file.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/mravel/pathtracer/pkg/core"
	"github.com/mravel/pathtracer/pkg/renderer"
	"github.com/mravel/pathtracer/pkg/scene"
)

// Config holds all the command-line configuration for a render.
type Config struct {
	ScenePath  string
	Width      int
	Height     int
	SamplesPer int
	Workers    int
	Out        string
	Profile    bool
	Seed       uint64
}

func main() {
	config := parseFlags()

	logger := renderer.NewDefaultLogger(os.Stderr)

	s, err := loadScene(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(s.Camera, renderer.Config{
		Width:      config.Width,
		Height:     config.Height,
		NumWorkers: config.Workers,
		Seed:       config.Seed,
		Logger:     logger,
	})
	r.Entities().Entities = s.Entities.Entities

	if config.Profile {
		profile(r, config, logger)
		return
	}

	render(r, config, logger)
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.ScenePath, "scene", "", "scene text file to load (empty = built-in demo scene)")
	flag.IntVar(&config.Width, "width", 400, "frame width in pixels")
	flag.IntVar(&config.Height, "height", 225, "frame height in pixels")
	flag.IntVar(&config.SamplesPer, "spp", 100, "samples per pixel to accumulate before stopping")
	flag.IntVar(&config.Workers, "workers", 0, "number of render workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Out, "out", "render.ppm", "output PPM file path")
	flag.BoolVar(&config.Profile, "profile", false, "run a fixed sample count and print per-worker timing, then exit")
	var seed int64
	flag.Int64Var(&seed, "seed", 1, "RNG seed, for reproducible renders")
	flag.Parse()
	config.Seed = uint64(seed)
	return config
}

func loadScene(config Config) (*scene.Scene, error) {
	if config.ScenePath == "" {
		rng := core.NewRNG(config.Seed, 1)
		aspect := float64(config.Width) / float64(config.Height)
		return scene.Demo(rng, aspect), nil
	}

	f, err := os.Open(config.ScenePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	loader := scene.DiskImageLoader(filepath.Dir(config.ScenePath))
	return scene.Load(f, config.Width, config.Height, loader)
}

// render runs a progressive render until every pixel has accumulated at
// least config.SamplesPer samples, then writes the framebuffer to a PPM
// file and reports elapsed time.
func render(r *renderer.Renderer, config Config, logger core.Logger) {
	start := time.Now()
	runUntilSamples(r, config)
	elapsed := time.Since(start)
	logger.Printf("render completed in %v", elapsed)

	out, err := os.Create(config.Out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := scene.WritePPM(out, r.Accumulator); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PPM: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("wrote %s", config.Out)
}

// profile runs a fixed sample count and prints each worker's average
// sample time to stderr, then exits 0 without writing an image.
func profile(r *renderer.Renderer, config Config, logger core.Logger) {
	runUntilSamples(r, config)

	for _, stat := range r.Sampler.Stats() {
		avg := stat.AverageNanos
		logger.Printf("worker %d: %d samples in %v (avg %.1fus/sample)", stat.WorkerID, stat.Samples, stat.Elapsed, avg/float64(time.Microsecond))
	}
}

// runUntilSamples restarts the renderer and blocks until every pixel has
// accumulated at least config.SamplesPer samples, then stops it.
func runUntilSamples(r *renderer.Renderer, config Config) {
	rng := core.NewRNG(config.Seed, 1)
	r.Restart(rng)

	target := int64(config.SamplesPer)
	for minSampleCount(r) < target {
		time.Sleep(50 * time.Millisecond)
	}
	r.Stop()
}

// minSampleCount returns the fewest samples accumulated at any pixel,
// so a profile/render pass can tell when every pixel has caught up.
func minSampleCount(r *renderer.Renderer) int64 {
	acc := r.Accumulator
	min := int64(math.MaxInt64)
	for i := 0; i < acc.Len(); i++ {
		if c := acc.Count(i); c < min {
			min = c
		}
	}
	return min
}
