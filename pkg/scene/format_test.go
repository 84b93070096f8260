package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mravel/pathtracer/pkg/core"
	"github.com/mravel/pathtracer/pkg/geometry"
	"github.com/mravel/pathtracer/pkg/material"
	"github.com/mravel/pathtracer/pkg/renderer"
)

func buildRoundTripScene() *Scene {
	cam := renderer.NewCamera(core.Vec3{X: 1, Y: 2, Z: 3}, 30, -10, 12, 0.2, 8, 0.6, 16.0/9.0)
	s := New(cam)

	s.Entities.Add(geometry.NewSphere(core.Vec3{Y: -1000}, 1000,
		material.NewLambertian(material.NewSolid(core.Vec3{X: 0.5, Y: 0.5, Z: 0.5}))))
	s.Entities.Add(geometry.NewSphere(core.Vec3{X: 1}, 1, material.NewMetal(material.NewSolid(core.Vec3{X: 0.7, Y: 0.6, Z: 0.5}), 0.3)))
	s.Entities.Add(geometry.NewSphere(core.Vec3{X: -1}, 1, material.NewDielectric(1.5, nil)))
	s.Entities.Add(geometry.NewRect(geometry.RectXZ, core.Vec3{Y: 4}, 3, 3, material.NewDiffuseLight(material.NewSolid(core.Vec3{X: 1, Y: 1, Z: 1}), 4)))
	s.Entities.Add(geometry.NewBox(core.Vec3{Y: 0.5}, 1, 1, 1, material.NewLambertian(
		material.NewChecker(10, material.NewSolid(core.Vec3{X: 1}), material.NewSolid(core.Vec3{Z: 1})))))

	return s
}

func TestSaveThenLoadRoundTripsEntityCount(t *testing.T) {
	original := buildRoundTripScene()

	var buf bytes.Buffer
	if err := Save(&buf, original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(&buf, 160, 90, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Entities.Len() != original.Entities.Len() {
		t.Errorf("Entities().Len() = %d, want %d", loaded.Entities.Len(), original.Entities.Len())
	}
}

func TestSaveThenLoadPreservesCameraParameters(t *testing.T) {
	original := buildRoundTripScene()

	var buf bytes.Buffer
	if err := Save(&buf, original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(&buf, 160, 90, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Camera.Distance != original.Camera.Distance {
		t.Errorf("Distance = %v, want %v", loaded.Camera.Distance, original.Camera.Distance)
	}
	if loaded.Camera.LookAt != original.Camera.LookAt {
		t.Errorf("LookAt = %v, want %v", loaded.Camera.LookAt, original.Camera.LookAt)
	}
}

func TestLoadRejectsMalformedCameraRecord(t *testing.T) {
	_, err := Load(strings.NewReader("NotACamera 1 2 3"), 16, 16, nil)
	if err == nil {
		t.Fatal("expected an error for a missing Camera record, got nil")
	}
}

func TestLoadRejectsUnknownEntityType(t *testing.T) {
	src := "Camera 10 0.5 0 10 0 0 0 0 0\nEntity 99 0 0 0 1\n"
	_, err := Load(strings.NewReader(src), 16, 16, nil)
	if err == nil {
		t.Fatal("expected an error for an unknown entity type code, got nil")
	}
}

func TestLoadEntityWithNoMaterialLeavesItNil(t *testing.T) {
	src := "Camera 10 0.5 0 10 0 0 0 0 0\nEntity 1 0 0 0 1\n"
	s, err := Load(strings.NewReader(src), 16, 16, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	sphere, ok := s.Entities.Entities[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("entity type = %T, want *geometry.Sphere", s.Entities.Entities[0])
	}
	if sphere.Material != nil {
		t.Errorf("Material = %v, want nil", sphere.Material)
	}
}

func TestLoadImageTextureUsesInjectedLoader(t *testing.T) {
	called := false
	loader := func(name string) (*material.Image, error) {
		called = true
		if name != "wood.png" {
			t.Errorf("loader called with %q, want %q", name, "wood.png")
		}
		return material.NewImage([]byte{255, 255, 255}, 1, 1, name), nil
	}

	src := "Camera 10 0.5 0 10 0 0 0 0 0\nEntity 1 0 0 0 1 Material 1 Texture 4 wood.png\n"
	s, err := Load(strings.NewReader(src), 16, 16, loader)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !called {
		t.Error("expected the image loader to be called")
	}
	sphere := s.Entities.Entities[0].(*geometry.Sphere)
	lam, ok := sphere.Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("material type = %T, want *material.Lambertian", sphere.Material)
	}
	if _, ok := lam.Albedo.(*material.Image); !ok {
		t.Errorf("Albedo type = %T, want *material.Image", lam.Albedo)
	}
}
