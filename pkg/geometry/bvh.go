package geometry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// ErrInvalidBVH is returned by Validate when a node's box does not enclose its contents
var ErrInvalidBVH = errors.New("invalid bvh")

// maxTraversalDepth bounds the explicit traversal stack. A median split halves every
// partition, so a tree over n primitives is ceil(log2 n) levels deep.
const maxTraversalDepth = 64

// Node is one entry in the BVH arena. Branches reference two children by index;
// leaves reference exactly one primitive.
type Node struct {
	Box   core.AABB
	Left  int32 // -1 for leaves
	Right int32 // -1 for leaves
	Prim  int32 // Index into BVH.Prims, -1 for branches
}

// IsLeaf reports whether the node holds a primitive
func (n *Node) IsLeaf() bool {
	return n.Prim >= 0
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is built once and then only read, so any number of goroutines may share it.
type BVH struct {
	Nodes []Node
	Prims []Primitive // Reordered so that leaves appear in traversal order
	Root  int32       // -1 when the tree is empty
}

// NewBVH constructs a BVH from a slice of primitives. The input slice is copied.
func NewBVH(prims []Primitive) *BVH {
	bvh := &BVH{Root: -1}
	if len(prims) == 0 {
		return bvh
	}

	bvh.Prims = slices.Clone(prims)
	bvh.Nodes = make([]Node, 0, 2*len(prims)-1)
	bvh.Root = bvh.build(0, len(prims))
	return bvh
}

// build partitions Prims[lo:hi] by median split along the longest axis of the
// partition's bounds and returns the index of the subtree root
func (bvh *BVH) build(lo, hi int) int32 {
	box := core.EmptyAABB()
	for i := lo; i < hi; i++ {
		box = box.Union(bvh.Prims[i].bbox)
	}

	idx := int32(len(bvh.Nodes))
	bvh.Nodes = append(bvh.Nodes, Node{Box: box, Left: -1, Right: -1, Prim: -1})

	if hi-lo == 1 {
		bvh.Nodes[idx].Prim = int32(lo)
		return idx
	}

	axis := box.LongestAxis()
	slices.SortStableFunc(bvh.Prims[lo:hi], func(a, b Primitive) int {
		return cmp.Compare(a.bbox.Center().Axis(axis), b.bbox.Center().Axis(axis))
	})

	mid := lo + (hi-lo)/2
	left := bvh.build(lo, mid)
	right := bvh.build(mid, hi)
	bvh.Nodes[idx].Left = left
	bvh.Nodes[idx].Right = right
	return idx
}

// Hit finds the closest intersection in [tMin, tMax]. When two primitives report the
// same t the one visited first is kept. rec is only written on success.
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax numeric.Real, rec *core.HitRecord) bool {
	if bvh.Root < 0 {
		return false
	}

	invDir := ray.InvDirection()
	var stack [maxTraversalDepth]int32
	stack[0] = bvh.Root
	sp := 1

	hitAnything := false
	closestSoFar := tMax
	var tmp core.HitRecord

	for sp > 0 {
		sp--
		node := &bvh.Nodes[stack[sp]]
		if !node.Box.HitInv(ray.Origin, invDir, tMin, closestSoFar) {
			continue
		}

		if node.Prim >= 0 {
			if bvh.Prims[node.Prim].Hit(ray, tMin, closestSoFar, &tmp) && (!hitAnything || tmp.T < closestSoFar) {
				hitAnything = true
				closestSoFar = tmp.T
				*rec = tmp
			}
			continue
		}

		// Right is pushed first so the left subtree is visited first
		stack[sp] = node.Right
		stack[sp+1] = node.Left
		sp += 2
	}

	return hitAnything
}

// HitLinear tests every primitive without using the tree. It returns the same closest
// hit as Hit and exists to cross-check traversal.
func (bvh *BVH) HitLinear(ray core.Ray, tMin, tMax numeric.Real, rec *core.HitRecord) bool {
	hitAnything := false
	closestSoFar := tMax
	var tmp core.HitRecord

	for i := range bvh.Prims {
		if bvh.Prims[i].Hit(ray, tMin, closestSoFar, &tmp) && (!hitAnything || tmp.T < closestSoFar) {
			hitAnything = true
			closestSoFar = tmp.T
			*rec = tmp
		}
	}
	return hitAnything
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root < 0 {
		return core.AABB{}
	}
	return bvh.Nodes[bvh.Root].Box
}

// Len returns the number of primitives
func (bvh *BVH) Len() int {
	return len(bvh.Prims)
}

// Stats contains statistics about the BVH structure
type Stats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() Stats {
	var stats Stats
	if bvh.Root < 0 {
		return stats
	}
	bvh.collectStats(bvh.Root, 0, &stats)
	return stats
}

func (bvh *BVH) collectStats(idx int32, depth int, stats *Stats) {
	node := &bvh.Nodes[idx]
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if node.IsLeaf() {
		stats.LeafNodes++
		return
	}
	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}

// Validate checks that every branch box contains both child boxes and every leaf box
// contains its primitive's box
func (bvh *BVH) Validate() error {
	for i := range bvh.Nodes {
		node := &bvh.Nodes[i]
		if node.IsLeaf() {
			if !node.Box.Contains(bvh.Prims[node.Prim].bbox) {
				return fmt.Errorf("%w: leaf %d does not contain primitive %d", ErrInvalidBVH, i, node.Prim)
			}
			continue
		}
		for _, child := range [2]int32{node.Left, node.Right} {
			if child < 0 || int(child) >= len(bvh.Nodes) {
				return fmt.Errorf("%w: node %d has dangling child %d", ErrInvalidBVH, i, child)
			}
			if !node.Box.Contains(bvh.Nodes[child].Box) {
				return fmt.Errorf("%w: node %d does not contain child %d", ErrInvalidBVH, i, child)
			}
		}
	}
	return nil
}
