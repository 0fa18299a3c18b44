package tpntree

import (
	"iter"

	"github.com/SilvanCodes/tpntree/geom"
	"github.com/SilvanCodes/tpntree/internal/arena"
	"github.com/SilvanCodes/tpntree/internal/queue"
)

// Neighbor is a nearest-neighbor result: an item and its Euclidean distance
// to the query point.
type Neighbor[T any] struct {
	Item     T
	Distance float64
}

// QueryRange returns every stored item inside q (point trees) or overlapping
// q (region trees). Fails with ErrInvalidRegion or ErrDimensionMismatch on a
// malformed query.
func (t *Tree[T]) QueryRange(q geom.Region) ([]T, error) {
	var out []T
	for item, err := range t.QueryRangeStream(q) {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// QueryRangeStream returns an iterator over the items matched by q, in
// depth-first node order. Children whose region does not overlap q are never
// visited. The iterator is lazy and restartable; stop iterating to terminate
// early.
//
// The tree must not be mutated while iterating.
func (t *Tree[T]) QueryRangeStream(q geom.Region) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if err := t.checkRegion(q); err != nil {
			var zero T
			yield(zero, err)
			return
		}

		stack := []arena.Ref{t.root}
		for len(stack) > 0 {
			ref := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.nodes.MustGet(ref)

			for _, it := range n.items {
				if t.kind.matches(it, q) {
					if !yield(it, nil) {
						return
					}
				}
			}

			// Reverse push so orthant 0 is visited first.
			for i := len(n.children) - 1; i >= 0; i-- {
				c := n.children[i]
				if t.nodes.MustGet(c).region.Overlaps(q) {
					stack = append(stack, c)
				}
			}
		}
	}
}

// Nearest returns the k stored items closest to p by Euclidean distance, in
// ascending distance order. Fewer than k items are returned when the tree
// holds fewer. k == 0 returns an empty result without error; k < 0 fails
// with ErrInvalidK.
func (t *Tree[T]) Nearest(p geom.Point, k int) ([]Neighbor[T], error) {
	var out []Neighbor[T]
	for nb, err := range t.NearestStream(p, k) {
		if err != nil {
			return nil, err
		}
		out = append(out, nb)
	}
	return out, nil
}

// nnCandidate is a frontier entry: either a node awaiting expansion or an
// item awaiting yield.
type nnCandidate[T any] struct {
	item   T
	ref    arena.Ref
	isItem bool
}

// NearestStream returns an iterator over up to k neighbors of p in ascending
// distance order. Stop iterating to terminate the search early.
//
// The traversal is best-first over a single min-heap keyed by distance lower
// bound: a node enters the frontier with the minimum distance from p to its
// region, an item with its exact distance. Because a node's bound never
// exceeds the distance of anything stored beneath it, popping the frontier
// in order yields items in globally ascending distance, and subtrees whose
// bound exceeds the current k-th best are simply never popped.
//
// The tree must not be mutated while iterating.
func (t *Tree[T]) NearestStream(p geom.Point, k int) iter.Seq2[Neighbor[T], error] {
	return func(yield func(Neighbor[T], error) bool) {
		if k < 0 {
			yield(Neighbor[T]{}, ErrInvalidK)
			return
		}
		if d := p.Dim(); d != t.dim {
			yield(Neighbor[T]{}, &ErrDimensionMismatch{Expected: t.dim, Actual: d})
			return
		}
		if k == 0 {
			return
		}

		frontier := queue.NewMin[nnCandidate[T]]()
		frontier.PushItem(queue.Item[nnCandidate[T]]{
			Value:    nnCandidate[T]{ref: t.root},
			Priority: t.bounds.MinDist(p),
		})

		yielded := 0
		for {
			c, ok := frontier.PopItem()
			if !ok {
				return
			}
			if c.Value.isItem {
				if !yield(Neighbor[T]{Item: c.Value.item, Distance: c.Priority}, nil) {
					return
				}
				yielded++
				if yielded == k {
					return
				}
				continue
			}

			n := t.nodes.MustGet(c.Value.ref)
			for _, it := range n.items {
				frontier.PushItem(queue.Item[nnCandidate[T]]{
					Value:    nnCandidate[T]{item: it, isItem: true},
					Priority: t.kind.minDist(it, p),
				})
			}
			for _, ch := range n.children {
				frontier.PushItem(queue.Item[nnCandidate[T]]{
					Value:    nnCandidate[T]{ref: ch},
					Priority: t.nodes.MustGet(ch).region.MinDist(p),
				})
			}
		}
	}
}
