package renderer

import (
	"math"
	"testing"

	"github.com/mravel/pathtracer/pkg/core"
)

func TestAccumulatorReplaceThenAccumulate(t *testing.T) {
	acc := NewAccumulator(1, 1)
	acc.Replace(0, core.Vec3{X: 1, Y: 0, Z: 0})
	if acc.Count(0) != 1 {
		t.Fatalf("Count after Replace = %v, want 1", acc.Count(0))
	}
	acc.Accumulate(0, core.Vec3{X: 1, Y: 0, Z: 0})
	if acc.Count(0) != 2 {
		t.Fatalf("Count after Accumulate = %v, want 2", acc.Count(0))
	}
}

func TestAccumulatorLawAfterNEpochs(t *testing.T) {
	acc := NewAccumulator(1, 1)
	colors := []core.Vec3{{X: 1}, {X: 0.5}, {X: 0.25}, {X: 2}}

	acc.Replace(0, colors[0])
	for _, c := range colors[1:] {
		acc.Accumulate(0, c)
	}

	if acc.Count(0) != int64(len(colors)) {
		t.Errorf("Count = %v, want %v", acc.Count(0), len(colors))
	}

	var wantSum float64
	for _, c := range colors {
		wantSum += c.X
	}
	p := &acc.pixels[0]
	if math.Abs(p.sumR-wantSum) > 1e-9 {
		t.Errorf("sumR = %v, want %v", p.sumR, wantSum)
	}
}

func TestAccumulatorColorIsGammaCorrectedAndClamped(t *testing.T) {
	acc := NewAccumulator(1, 1)
	acc.Replace(0, core.Vec3{X: 4, Y: 0.25, Z: 100})
	c := acc.Color(0)
	if math.Abs(c.X-1) > 1e-9 {
		t.Errorf("Color.X = %v, want sqrt(4)=2 clamped to 1", c.X)
	}
	if math.Abs(c.Y-0.5) > 1e-9 {
		t.Errorf("Color.Y = %v, want sqrt(0.25)=0.5", c.Y)
	}
	if c.Z != 1 {
		t.Errorf("Color.Z = %v, want clamped to 1", c.Z)
	}
}

func TestAccumulatorZeroCountIsBlack(t *testing.T) {
	acc := NewAccumulator(1, 1)
	if got := acc.Color(0); !got.IsZero() {
		t.Errorf("Color of untouched pixel = %v, want zero", got)
	}
}

func TestAccumulatorResetClearsAllPixels(t *testing.T) {
	acc := NewAccumulator(2, 2)
	for i := 0; i < acc.Len(); i++ {
		acc.Replace(i, core.Vec3{X: 1, Y: 1, Z: 1})
	}
	acc.Reset()
	for i := 0; i < acc.Len(); i++ {
		if acc.Count(i) != 0 {
			t.Fatalf("pixel %d count after Reset = %v, want 0", i, acc.Count(i))
		}
	}
}
