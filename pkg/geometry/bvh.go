package geometry

import (
	"sort"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// BVH is a node in a bounding volume hierarchy. A leaf wraps a single
// primitive (left == right); internal nodes hold two children and a box
// covering both. The tree is built once and never mutated, so traversal
// needs no locking.
type BVH struct {
	left  core.Hittable
	right core.Hittable
	box   core.AABB
	leaf  bool
}

// NewBVH builds a hierarchy over the given objects for the camera
// shutter interval. The split axis at each level is chosen at random
// from the supplied sampler. Panics if the list is empty or any object
// lacks a bounding box, which indicates a scene-construction bug.
func NewBVH(objects []core.Hittable, time0, time1 float64, sampler core.Sampler) *BVH {
	if len(objects) == 0 {
		panic("geometry: cannot build BVH from empty object list")
	}

	// Build over a copy so the caller's slice order is preserved.
	working := make([]core.Hittable, len(objects))
	copy(working, objects)

	return buildBVH(working, time0, time1, sampler)
}

func buildBVH(objects []core.Hittable, time0, time1 float64, sampler core.Sampler) *BVH {
	axis := int(sampler.Get1D() * 3)
	if axis > 2 {
		axis = 2
	}

	sort.Slice(objects, func(i, j int) bool {
		boxI, okI := objects[i].BoundingBox(time0, time1)
		boxJ, okJ := objects[j].BoundingBox(time0, time1)
		if !okI || !okJ {
			panic("geometry: object without bounding box in BVH construction")
		}
		return boxI.Min.Axis(axis) < boxJ.Min.Axis(axis)
	})

	node := &BVH{}
	switch len(objects) {
	case 1:
		node.left = objects[0]
		node.right = objects[0]
		node.leaf = true
	case 2:
		node.left = objects[0]
		node.right = objects[1]
	default:
		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid], time0, time1, sampler)
		node.right = buildBVH(objects[mid:], time0, time1, sampler)
	}

	leftBox, okL := node.left.BoundingBox(time0, time1)
	rightBox, okR := node.right.BoundingBox(time0, time1)
	if !okL || !okR {
		panic("geometry: object without bounding box in BVH construction")
	}
	node.box = core.SurroundingBox(leftBox, rightBox)

	return node
}

// Hit traverses the hierarchy, pruning the right subtree with the
// left subtree's hit parameter when one is found.
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !b.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if b.leaf {
		return b.left.Hit(ray, tMin, tMax)
	}

	if leftRec, ok := b.left.Hit(ray, tMin, tMax); ok {
		if rightRec, ok := b.right.Hit(ray, tMin, leftRec.T); ok {
			return rightRec, true
		}
		return leftRec, true
	}

	return b.right.Hit(ray, tMin, tMax)
}

// BoundingBox returns the node's cached box
func (b *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return b.box, true
}
