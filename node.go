package tpntree

import (
	"github.com/SilvanCodes/tpntree/geom"
	"github.com/SilvanCodes/tpntree/internal/arena"
)

// node is a single tree node. A node is a leaf while it has no children;
// after subdivision it holds exactly 2^N child refs in bit-pattern orthant
// order. Internal nodes of a region tree may still hold items whose extent
// straddles the split; internal nodes of a point tree hold none.
type node[T any] struct {
	region   geom.Region
	depth    int
	items    []T
	children []arena.Ref
}

func (n *node[T]) leaf() bool { return len(n.children) == 0 }

// place inserts item into the subtree rooted at ref. Validation has already
// happened; placement cannot fail.
func (t *Tree[T]) place(ref arena.Ref, item T) {
	for {
		n := t.nodes.MustGet(ref)
		if n.leaf() {
			if len(n.items) < t.opts.MaxItemsPerLeaf || n.depth >= t.opts.MaxDepth {
				n.items = append(n.items, item)
				return
			}
			t.subdivide(ref)
			continue
		}
		idx, ok := t.kind.orthant(item, n.region)
		if !ok {
			// Straddles more than one orthant; keep it here instead of
			// duplicating it across children.
			n.items = append(n.items, item)
			return
		}
		ref = n.children[idx]
	}
}

// subdivide turns the leaf at ref into an internal node with 2^N empty
// children and redistributes its items through the normal placement path,
// so straddling region items stay at the now-internal node.
func (t *Tree[T]) subdivide(ref arena.Ref) {
	n := t.nodes.MustGet(ref)
	regions := n.region.Subdivide()
	depth := n.depth
	items := n.items
	n.items = nil

	children := make([]arena.Ref, len(regions))
	for i, r := range regions {
		children[i] = t.nodes.Alloc(node[T]{region: r, depth: depth + 1})
	}

	// Alloc may move the arena's backing array; re-fetch before linking.
	n = t.nodes.MustGet(ref)
	n.children = children

	for _, it := range items {
		t.place(ref, it)
	}

	t.logger.Debug("node subdivided",
		"depth", depth,
		"children", len(children),
		"redistributed", len(items),
	)
}

// compactAt collapses, bottom-up, every subtree under ref whose children are
// all empty leaves. The collapsed node becomes a leaf again and keeps its own
// items. Returns the number of freed nodes.
func (t *Tree[T]) compactAt(ref arena.Ref) int {
	n := t.nodes.MustGet(ref)
	if n.leaf() {
		return 0
	}

	freed := 0
	for _, c := range n.children {
		freed += t.compactAt(c)
	}

	for _, c := range n.children {
		ch := t.nodes.MustGet(c)
		if !ch.leaf() || len(ch.items) != 0 {
			return freed
		}
	}
	for _, c := range n.children {
		t.nodes.Free(c)
	}
	freed += len(n.children)
	n.children = nil
	return freed
}
