// Package geometry implements the path tracer's primitives: Sphere, the
// three axis rectangles, Box, and the FlipNormals wrapper.
package geometry

import (
	"math"

	"github.com/mravel/pathtracer/pkg/core"
)

// Sphere is a ray-intersectable sphere of positive radius.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a Sphere. Radius must be positive.
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the sphere quadratic, preferring the nearer root strictly
// between tMin and tMax.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1 / s.Radius)
	u, v := sphereUV(normal)

	return core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		U:        u,
		V:        v,
		Material: s.Material,
	}, true
}

// sphereUV computes spherical texture coordinates from a point on the
// unit sphere (the outward normal).
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(p.Y)
	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}

// BoundingBox returns the box spanning the sphere in every axis by Radius.
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := core.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r)), true
}
