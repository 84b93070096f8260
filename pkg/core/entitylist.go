package core

import "sort"

// EntityList is a flat, unordered collection of entities that is itself
// an Entity: hitting it tests every member and keeps the closest hit.
// It also serves as the BVH builder's working set, via Sort and Split.
type EntityList struct {
	Entities []Entity
}

// NewEntityList creates an empty list, optionally pre-sized.
func NewEntityList(capacity int) *EntityList {
	return &EntityList{Entities: make([]Entity, 0, capacity)}
}

// Add appends an entity to the list.
func (l *EntityList) Add(e Entity) {
	l.Entities = append(l.Entities, e)
}

// Len returns the number of entities in the list.
func (l *EntityList) Len() int {
	return len(l.Entities)
}

// Hit tests every entity in the list and returns the closest hit within
// [tMin, tMax], narrowing the search interval as closer hits are found.
func (l *EntityList) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, e := range l.Entities {
		if rec, ok := e.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

// BoundingBox returns the box surrounding every entity in the list. It
// reports false only if the list is empty or any member entity cannot
// produce a bounding box.
func (l *EntityList) BoundingBox() (AABB, bool) {
	if len(l.Entities) == 0 {
		return AABB{}, false
	}

	var box AABB
	first := true
	for _, e := range l.Entities {
		entityBox, ok := e.BoundingBox()
		if !ok {
			return AABB{}, false
		}
		if first {
			box = entityBox
			first = false
			continue
		}
		box = Surround(box, entityBox)
	}
	return box, true
}

// Sort orders the list's entities by the minimum coordinate of their
// bounding box along the given axis (0=X, 1=Y, 2=Z). Entities without a
// bounding box sort last.
func (l *EntityList) Sort(axis int) {
	sort.Slice(l.Entities, func(i, j int) bool {
		bi, okI := l.Entities[i].BoundingBox()
		bj, okJ := l.Entities[j].BoundingBox()
		if !okI || !okJ {
			return okI && !okJ
		}
		return bi.ComponentMin(axis) < bj.ComponentMin(axis)
	})
}

// Split divides the list in half, returning independent left and right
// lists covering the first and second halves of the current ordering.
// Callers sort before splitting to get a spatial partition.
func (l *EntityList) Split() (*EntityList, *EntityList) {
	n := len(l.Entities)
	mid := n / 2

	left := &EntityList{Entities: append([]Entity(nil), l.Entities[:mid]...)}
	right := &EntityList{Entities: append([]Entity(nil), l.Entities[mid:]...)}
	return left, right
}
