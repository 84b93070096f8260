package renderer

import (
	"math"
	"testing"

	"github.com/mravel/pathtracer/pkg/core"
)

func TestCameraPitchIsClamped(t *testing.T) {
	cam := NewCamera(core.Vec3{}, 0, 200, 10, 0, 10, math.Pi/6, 1)
	if cam.PitchDegrees > maxPitchDegrees {
		t.Errorf("PitchDegrees = %v, want <= %v", cam.PitchDegrees, maxPitchDegrees)
	}
}

func TestCameraDistanceIsClamped(t *testing.T) {
	cam := NewCamera(core.Vec3{}, 0, 0, 1, 0, 10, math.Pi/6, 1)
	if cam.Distance < minDistance {
		t.Errorf("Distance = %v, want >= %v", cam.Distance, minDistance)
	}
}

func TestCameraOriginAtZeroYawZeroPitchIsOnNegativeZ(t *testing.T) {
	cam := NewCamera(core.Vec3{}, 0, 0, 10, 0, 10, math.Pi/6, 1)
	origin := cam.Origin()
	if math.Abs(origin.X) > 1e-9 || math.Abs(origin.Y) > 1e-9 || math.Abs(origin.Z+10) > 1e-9 {
		t.Errorf("Origin at yaw=0,pitch=0 = %v, want {0,0,-10}", origin)
	}
}

func TestCameraRayNoApertureHasNoJitter(t *testing.T) {
	cam := NewCamera(core.Vec3{}, 0, 0, 10, 0, 10, math.Pi/6, 1)
	rng := core.NewRNG(1, 1)
	a := cam.Ray(0.5, 0.5, rng)
	b := cam.Ray(0.5, 0.5, rng)
	if a.Origin != b.Origin {
		t.Errorf("ray origins differ with zero aperture: %v vs %v", a.Origin, b.Origin)
	}
}

func TestCameraRayCentersTowardLookAt(t *testing.T) {
	lookAt := core.Vec3{X: 1, Y: 2, Z: 3}
	cam := NewCamera(lookAt, 0, 0, 10, 0, 10, math.Pi/6, 1)
	rng := core.NewRNG(1, 1)
	ray := cam.Ray(0.5, 0.5, rng)
	// The direction runs from the origin to the focus plane, so t=1 lands on it.
	target := ray.At(1)
	if math.Abs(target.X-lookAt.X) > 1e-6 || math.Abs(target.Y-lookAt.Y) > 1e-6 || math.Abs(target.Z-lookAt.Z) > 1e-6 {
		t.Errorf("center ray at focus distance = %v, want lookAt %v", target, lookAt)
	}
}
