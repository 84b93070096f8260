// Package scene provides the scene container plus the external-facing
// pieces spec.md places out of the core engine's scope but still
// specifies the interfaces for: the text scene format, PPM screenshots,
// and a small built-in demo scene.
package scene

import (
	"github.com/mravel/pathtracer/pkg/core"
	"github.com/mravel/pathtracer/pkg/renderer"
)

// Scene bundles a camera and an entity list: everything Load/Save and
// the demo builder produce, and everything a Renderer needs to start
// rendering.
type Scene struct {
	Camera   *renderer.Camera
	Entities *core.EntityList
}

// New creates an empty scene around the given camera.
func New(camera *renderer.Camera) *Scene {
	return &Scene{Camera: camera, Entities: core.NewEntityList(0)}
}
