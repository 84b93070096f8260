package core

// BVHNode is a node of a bounding volume hierarchy: either an interior
// node with two children, or a leaf wrapping a single entity. Construction
// follows the "random axis, sort, split in half" scheme: pick a random
// axis, sort the working list along it, recurse on each half, and bound
// the node by the union of its children's boxes.
type BVHNode struct {
	left, right Entity
	box         AABB
}

// NewBVH builds a BVH over the given entities. It panics if any entity
// cannot produce a bounding box, since an unbounded entity breaks the
// hierarchy invariant that every node's box contains all of its
// descendants.
func NewBVH(list *EntityList, rng *RNG) Entity {
	return buildBVH(list.Entities, rng)
}

func buildBVH(entities []Entity, rng *RNG) Entity {
	n := len(entities)
	switch n {
	case 0:
		return nil
	case 1:
		if _, ok := entities[0].BoundingBox(); !ok {
			panic("core: entity has no bounding box")
		}
		return entities[0]
	}

	axis := int(rng.Range(0, 3))
	working := &EntityList{Entities: append([]Entity(nil), entities...)}
	working.Sort(axis)

	leftList, rightList := working.Split()
	left := buildBVH(leftList.Entities, rng)
	right := buildBVH(rightList.Entities, rng)

	leftBox, okLeft := left.BoundingBox()
	rightBox, okRight := right.BoundingBox()
	if !okLeft || !okRight {
		panic("core: entity has no bounding box")
	}

	return &BVHNode{left: left, right: right, box: Surround(leftBox, rightBox)}
}

// Hit descends the hierarchy, pruning subtrees whose box the ray misses.
// It checks the left child first; if it produces a hit, the search
// interval handed to the right child is narrowed to that hit's T, so a
// closer right-subtree hit still wins but a farther one cannot.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return HitRecord{}, false
	}

	leftRec, hitLeft := n.left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftRec.T
	}
	rightRec, hitRight := n.right.Hit(ray, tMin, tMax)
	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return HitRecord{}, false
}

// BoundingBox returns the node's precomputed box.
func (n *BVHNode) BoundingBox() (AABB, bool) {
	return n.box, true
}
