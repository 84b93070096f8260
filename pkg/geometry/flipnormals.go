package geometry

import "github.com/mravel/pathtracer/pkg/core"

// FlipNormals wraps an entity and negates its surface normal on hit,
// used to turn an outward-facing rectangle into an inward-facing wall.
type FlipNormals struct {
	Inner core.Entity
}

// NewFlipNormals wraps inner, flipping its reported normal on every hit.
func NewFlipNormals(inner core.Entity) *FlipNormals {
	return &FlipNormals{Inner: inner}
}

// Hit forwards to Inner and negates the returned normal.
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	rec, ok := f.Inner.Hit(ray, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.Normal = rec.Normal.Negate()
	return rec, true
}

// BoundingBox forwards to Inner unchanged; flipping normals doesn't move geometry.
func (f *FlipNormals) BoundingBox() (core.AABB, bool) {
	return f.Inner.BoundingBox()
}
