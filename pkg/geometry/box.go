package geometry

import "github.com/mravel/pathtracer/pkg/core"

// Box is an axis-aligned rectangular prism, built from six Rect faces.
// A Rect's normal points along the positive axis, so the three faces on
// the negative sides are wrapped in FlipNormals: all six normals point
// outward.
type Box struct {
	Center               core.Vec3
	Width, Height, Depth float64
	Material             core.Material

	faces *core.EntityList
	box   core.AABB
}

// NewBox creates a Box of the given center and extents along each axis.
func NewBox(center core.Vec3, width, height, depth float64, mat core.Material) *Box {
	halfW, halfH, halfD := width/2, height/2, depth/2

	faces := core.NewEntityList(6)
	// Front/back (XY plane, offset along Z), outward-facing.
	faces.Add(NewRect(RectXY, core.Vec3{X: center.X, Y: center.Y, Z: center.Z + halfD}, width, height, mat))
	faces.Add(NewFlipNormals(NewRect(RectXY, core.Vec3{X: center.X, Y: center.Y, Z: center.Z - halfD}, width, height, mat)))
	// Top/bottom (XZ plane, offset along Y), outward-facing.
	faces.Add(NewRect(RectXZ, core.Vec3{X: center.X, Y: center.Y + halfH, Z: center.Z}, width, depth, mat))
	faces.Add(NewFlipNormals(NewRect(RectXZ, core.Vec3{X: center.X, Y: center.Y - halfH, Z: center.Z}, width, depth, mat)))
	// Left/right (YZ plane, offset along X), outward-facing.
	faces.Add(NewRect(RectYZ, core.Vec3{X: center.X + halfW, Y: center.Y, Z: center.Z}, height, depth, mat))
	faces.Add(NewFlipNormals(NewRect(RectYZ, core.Vec3{X: center.X - halfW, Y: center.Y, Z: center.Z}, height, depth, mat)))

	box := core.NewAABB(
		core.Vec3{X: center.X - halfW, Y: center.Y - halfH, Z: center.Z - halfD},
		core.Vec3{X: center.X + halfW, Y: center.Y + halfH, Z: center.Z + halfD},
	)

	return &Box{
		Center: center, Width: width, Height: height, Depth: depth, Material: mat,
		faces: faces, box: box,
	}
}

// Hit delegates to the box's six-face entity list.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box's precomputed extent.
func (b *Box) BoundingBox() (core.AABB, bool) {
	return b.box, true
}
