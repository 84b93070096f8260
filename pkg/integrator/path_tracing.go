// Package integrator implements the recursive path-tracing recursion
// that turns a ray into a radiance estimate.
package integrator

import (
	"math"

	"github.com/mravel/pathtracer/pkg/core"
)

// DefaultMaxDepth is the scatter recursion bound NewPathTracer sets;
// PathTracer.MaxDepth can be changed afterwards.
const DefaultMaxDepth = 50

// hitEpsilon skips self-intersection at the origin of a scattered ray.
const hitEpsilon = 0.001

// PathTracer evaluates radiance along a ray against a scene's BVH root.
type PathTracer struct {
	World    core.Entity
	RNG      *core.RNG
	MaxDepth int

	// BackgroundBottom and BackgroundTop are the two endpoint colors of
	// the vertical background gradient a miss resolves to.
	BackgroundBottom core.Vec3
	BackgroundTop    core.Vec3
}

// NewPathTracer creates a PathTracer over world, using rng for every
// scatter decision it makes. MaxDepth defaults to DefaultMaxDepth.
func NewPathTracer(world core.Entity, rng *core.RNG, backgroundBottom, backgroundTop core.Vec3) *PathTracer {
	return &PathTracer{
		World:            world,
		RNG:              rng,
		MaxDepth:         DefaultMaxDepth,
		BackgroundBottom: backgroundBottom,
		BackgroundTop:    backgroundTop,
	}
}

// Cast intersects ray against the world; on a miss it returns the
// background gradient, on a hit it combines the surface's emission with
// attenuation times the recursively cast scattered ray, up to MaxDepth.
func (p *PathTracer) Cast(ray core.Ray, depth int) core.Vec3 {
	if p.World == nil {
		return p.background(ray)
	}

	hit, ok := p.World.Hit(ray, hitEpsilon, math.Inf(1))
	if !ok {
		return p.background(ray)
	}

	var emitted core.Vec3
	if hit.Material != nil {
		emitted = hit.Material.Emit(hit.U, hit.V, hit.Point)
	}

	if depth >= p.MaxDepth || hit.Material == nil {
		return emitted
	}

	result, didScatter := hit.Material.Scatter(ray, hit, p.RNG)
	if !didScatter {
		return emitted
	}

	incoming := p.Cast(result.Scattered, depth+1)
	return emitted.Add(result.Attenuation.MultiplyVec(incoming))
}

func (p *PathTracer) background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1)
	return p.BackgroundBottom.Lerp(p.BackgroundTop, t)
}
