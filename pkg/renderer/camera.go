package renderer

import (
	"math"

	"github.com/mravel/pathtracer/pkg/core"
)

const (
	minPitchDegrees = -89.99
	maxPitchDegrees = 89.99
	minDistance     = 3.0
	maxDistance     = 1000.0
)

// Camera is an orbit camera: it looks at a fixed point from a position
// derived from yaw/pitch/distance, recomputing its projection basis
// whenever those orbit parameters change.
type Camera struct {
	LookAt        core.Vec3
	YawDegrees    float64
	PitchDegrees  float64
	Distance      float64
	Aperture      float64
	FocusDistance float64
	FOV           float64 // vertical, radians
	Aspect        float64

	origin     core.Vec3
	lowerLeft  core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	right      core.Vec3
	up         core.Vec3
	lensRadius float64
}

// NewCamera creates a Camera and computes its initial projection basis.
func NewCamera(lookAt core.Vec3, yawDegrees, pitchDegrees, distance, aperture, focusDistance, fov, aspect float64) *Camera {
	c := &Camera{
		LookAt:        lookAt,
		YawDegrees:    yawDegrees,
		PitchDegrees:  pitchDegrees,
		Distance:      distance,
		Aperture:      aperture,
		FocusDistance: focusDistance,
		FOV:           fov,
		Aspect:        aspect,
	}
	c.Update()
	return c
}

// Update recomputes the camera's position and projection basis from its
// current orbit parameters. Call it whenever LookAt/Yaw/Pitch/Distance/
// Aperture/FocusDistance/FOV/Aspect change.
func (c *Camera) Update() {
	c.PitchDegrees = clampFloat(c.PitchDegrees, minPitchDegrees, maxPitchDegrees)
	c.Distance = clampFloat(c.Distance, minDistance, maxDistance)

	yaw := radians(c.YawDegrees)
	pitch := radians(c.PitchDegrees)

	offset := core.Vec3{
		X: -math.Sin(yaw) * math.Cos(pitch),
		Y: -math.Sin(pitch),
		Z: -math.Cos(yaw) * math.Cos(pitch),
	}
	c.origin = c.LookAt.Add(offset.Multiply(c.Distance))

	forward := c.origin.Subtract(c.LookAt).Normalize()
	right := core.Vec3{Y: 1}.Cross(forward).Normalize()
	up := forward.Cross(right).Normalize()
	c.right, c.up = right, up

	halfHeight := math.Tan(c.FOV / 2)
	halfWidth := c.Aspect * halfHeight

	c.lowerLeft = c.origin.
		Subtract(right.Multiply(halfWidth * c.FocusDistance)).
		Subtract(up.Multiply(halfHeight * c.FocusDistance)).
		Subtract(forward.Multiply(c.FocusDistance))
	c.horizontal = right.Multiply(2 * halfWidth * c.FocusDistance)
	c.vertical = up.Multiply(2 * halfHeight * c.FocusDistance)
	c.lensRadius = c.Aperture / 2
}

// Ray generates a primary ray for screen-space (s, t) in [0,1)^2,
// jittering the origin across the lens when Aperture > 0 for
// depth-of-field.
func (c *Camera) Ray(s, t float64, rng *core.RNG) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		lensPoint := rng.RandomInUnitDisk().Multiply(c.lensRadius)
		offset = c.right.Multiply(lensPoint.X).Add(c.up.Multiply(lensPoint.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeft.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)
	return core.NewRay(origin, direction)
}

// Origin returns the camera's current eye position.
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
