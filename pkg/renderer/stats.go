package renderer

import "time"

// RenderStats summarizes one worker's throughput, reported by the
// profiling CLI (spec's --profile harness).
type RenderStats struct {
	WorkerID     int
	Samples      int64
	Elapsed      time.Duration
	AverageNanos float64
}

// NewRenderStats computes the average time per sample for a worker that
// produced samples over elapsed.
func NewRenderStats(workerID int, samples int64, elapsed time.Duration) RenderStats {
	stats := RenderStats{WorkerID: workerID, Samples: samples, Elapsed: elapsed}
	if samples > 0 {
		stats.AverageNanos = float64(elapsed.Nanoseconds()) / float64(samples)
	}
	return stats
}
