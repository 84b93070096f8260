package geometry

import "github.com/mravel/pathtracer/pkg/core"

// RectAxis names which axis a Rect's plane is perpendicular to — i.e.
// which coordinate is held constant.
type RectAxis int

const (
	// RectXY lies in the X-Y plane at a fixed Z (off-plane axis Z).
	RectXY RectAxis = iota
	// RectXZ lies in the X-Z plane at a fixed Y (off-plane axis Y).
	RectXZ
	// RectYZ lies in the Y-Z plane at a fixed X (off-plane axis X).
	RectYZ
)

// rectEpsilon is the half-thickness of a Rect's virtual AABB slab along
// its off-plane axis, so a Rect still bounds a volume a BVH can contain.
const rectEpsilon = 0.0001

// Rect is an axis-aligned rectangle, one of the three orientations in
// RectAxis, centered at Center with the given in-plane Width and Height.
type Rect struct {
	Center   core.Vec3
	Width    float64
	Height   float64
	Axis     RectAxis
	Material core.Material
}

// NewRect creates a Rect of the given axis orientation.
func NewRect(axis RectAxis, center core.Vec3, width, height float64, mat core.Material) *Rect {
	return &Rect{Center: center, Width: width, Height: height, Axis: axis, Material: mat}
}

// offPlane returns the index (0=X,1=Y,2=Z) of the axis the rectangle's
// plane is perpendicular to, and the two in-plane axis indices in a
// fixed (a, b) order matching the rectangle's documented parameterization.
func (r *Rect) offPlane() (off, a, b int) {
	switch r.Axis {
	case RectXY:
		return 2, 0, 1
	case RectXZ:
		return 1, 0, 2
	default: // RectYZ
		return 0, 1, 2
	}
}

func component(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func unitAxis(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.Vec3{X: 1}
	case 1:
		return core.Vec3{Y: 1}
	default:
		return core.Vec3{Z: 1}
	}
}

// Hit intersects the ray with the rectangle's plane, then rejects points
// falling outside the centered rectangle in the two in-plane axes.
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	off, aAxis, bAxis := r.offPlane()

	dirOff := component(ray.Direction, off)
	if dirOff == 0 {
		return core.HitRecord{}, false
	}

	k := component(r.Center, off)
	t := (k - component(ray.Origin, off)) / dirOff
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	point := ray.At(t)
	aVal := component(point, aAxis)
	bVal := component(point, bAxis)
	aCenter := component(r.Center, aAxis)
	bCenter := component(r.Center, bAxis)

	halfW := r.Width / 2
	halfH := r.Height / 2
	if aVal < aCenter-halfW || aVal > aCenter+halfW || bVal < bCenter-halfH || bVal > bCenter+halfH {
		return core.HitRecord{}, false
	}

	u := (aVal - (aCenter - halfW)) / r.Width
	v := (bVal - (bCenter - halfH)) / r.Height

	return core.HitRecord{
		T:        t,
		Point:    point,
		Normal:   unitAxis(off),
		U:        u,
		V:        v,
		Material: r.Material,
	}, true
}

// BoundingBox returns a box with the rectangle's full extent in the two
// in-plane axes and a thin virtual slab along the off-plane axis.
func (r *Rect) BoundingBox() (core.AABB, bool) {
	off, aAxis, bAxis := r.offPlane()
	halfW := r.Width / 2
	halfH := r.Height / 2

	min := setComponent(core.Vec3{}, off, component(r.Center, off)-rectEpsilon)
	max := setComponent(core.Vec3{}, off, component(r.Center, off)+rectEpsilon)
	min = setComponent(min, aAxis, component(r.Center, aAxis)-halfW)
	max = setComponent(max, aAxis, component(r.Center, aAxis)+halfW)
	min = setComponent(min, bAxis, component(r.Center, bAxis)-halfH)
	max = setComponent(max, bAxis, component(r.Center, bAxis)+halfH)

	return core.NewAABB(min, max), true
}

func setComponent(v core.Vec3, axis int, value float64) core.Vec3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}
