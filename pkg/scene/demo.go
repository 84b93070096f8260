package scene

import (
	"math"

	"github.com/mravel/pathtracer/pkg/core"
	"github.com/mravel/pathtracer/pkg/geometry"
	"github.com/mravel/pathtracer/pkg/material"
	"github.com/mravel/pathtracer/pkg/renderer"
)

// Demo builds a small built-in scene: a ground plane, a scattered field
// of small random spheres, three signature large spheres, and an
// overhead rectangular light. It needs no scene file and is what the
// CLI renders when none is given.
//
// Material choice follows the classic 80% diffuse / 10% metal / 10%
// glass split: chooseMat < 0.8 is diffuse, < 0.9 is metal, the rest glass.
func Demo(rng *core.RNG, aspect float64) *Scene {
	cam := renderer.NewCamera(core.Vec3{Y: 1}, 180, -15, 13, 0.1, 10, radians(20), aspect)
	s := New(cam)

	s.Entities.Add(geometry.NewSphere(core.Vec3{Y: -1000}, 1000,
		material.NewLambertian(material.NewSolid(core.Vec3{X: 0.5, Y: 0.5, Z: 0.5}))))

	avoid := core.Vec3{X: 4, Y: 0.2}
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.Vec3{
				X: float64(a) + 0.9*rng.Float64(),
				Y: 0.2,
				Z: float64(b) + 0.9*rng.Float64(),
			}
			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.Vec3{X: rng.Float64() * rng.Float64(), Y: rng.Float64() * rng.Float64(), Z: rng.Float64() * rng.Float64()}
				s.Entities.Add(geometry.NewSphere(center, 0.2, material.NewLambertian(material.NewSolid(albedo))))
			case chooseMat < 0.9:
				albedo := core.Vec3{X: 0.5 * (1 + rng.Float64()), Y: 0.5 * (1 + rng.Float64()), Z: 0.5 * (1 + rng.Float64())}
				s.Entities.Add(geometry.NewSphere(center, 0.2, material.NewMetal(material.NewSolid(albedo), 0.5*rng.Float64())))
			default:
				s.Entities.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5, nil)))
			}
		}
	}

	s.Entities.Add(geometry.NewSphere(core.Vec3{Y: 1}, 1, material.NewDielectric(1.5, nil)))
	s.Entities.Add(geometry.NewSphere(core.Vec3{X: -4, Y: 1}, 1, material.NewLambertian(material.NewSolid(core.Vec3{X: 0.4, Y: 0.2, Z: 0.1}))))
	s.Entities.Add(geometry.NewSphere(core.Vec3{X: 4, Y: 1}, 1, material.NewMetal(material.NewSolid(core.Vec3{X: 0.7, Y: 0.6, Z: 0.5}), 0)))

	light := geometry.NewRect(geometry.RectXZ, core.Vec3{Y: 8}, 6, 6, material.NewDiffuseLight(material.NewSolid(core.Vec3{X: 1, Y: 1, Z: 1}), 4))
	s.Entities.Add(light)

	return s
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
