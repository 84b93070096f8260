package core

import "math"

// AABB is an axis-aligned bounding box. Invariant: Min <= Max componentwise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates an AABB from min and max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Surround returns the smallest AABB containing both a and b.
func Surround(a, b AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Hit tests whether the ray overlaps the box within [tMin, tMax] using the
// slab method: for each axis, compute the entry/exit t and shrink the
// running interval; a degenerate (zero) direction component produces an
// infinite invD, which the min/max comparisons handle correctly without a
// special case.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := axisComponents(ray, b, axis)

		invD := 1.0 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func axisComponents(ray Ray, b AABB, axis int) (origin, dir, lo, hi float64) {
	switch axis {
	case 0:
		return ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X
	case 1:
		return ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y
	default:
		return ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// ComponentMin returns the box's minimum coordinate along the given axis (0=X,1=Y,2=Z).
func (b AABB) ComponentMin(axis int) float64 {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}

// IsValid reports whether Min <= Max on every axis.
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}
