package geometry

import (
	"math"
	"testing"

	"github.com/mravel/pathtracer/pkg/core"
)

func TestSphereHitCorrectness(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -3}, core.Vec3{X: 0, Y: 0, Z: 1})

	rec, ok := sphere.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-2) > 1e-5 {
		t.Errorf("T = %v, want 2", rec.T)
	}
	want := core.Vec3{X: 0, Y: 0, Z: -1}
	if math.Abs(rec.Normal.X-want.X) > 1e-9 || math.Abs(rec.Normal.Y-want.Y) > 1e-9 || math.Abs(rec.Normal.Z-want.Z) > 1e-9 {
		t.Errorf("Normal = %v, want %v", rec.Normal, want)
	}
}

func TestSphereMissesWhenRayPointsAway(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -3}, core.Vec3{X: 0, Y: 0, Z: -1})
	if _, ok := sphere.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("expected no hit for a ray pointing away from the sphere")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	sphere := NewSphere(core.Vec3{X: 1, Y: 2, Z: 3}, 2, nil)
	box, ok := sphere.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min != (core.Vec3{X: -1, Y: 0, Z: 1}) || box.Max != (core.Vec3{X: 3, Y: 4, Z: 5}) {
		t.Errorf("BoundingBox = %v, want min{-1,0,1} max{3,4,5}", box)
	}
}
