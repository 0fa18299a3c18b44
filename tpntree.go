package tpntree

import (
	"slices"

	"github.com/SilvanCodes/tpntree/geom"
	"github.com/SilvanCodes/tpntree/internal/arena"
)

// Tree is an N-dimensional region-partitioning tree over items of type T.
// The item type is fixed by the constructor: NewPointTree builds a tree over
// PointItem values, NewRegionTree over RegionItem values.
//
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	nodes  *arena.Arena[node[T]]
	root   arena.Ref
	bounds geom.Region
	dim    int
	size   int
	opts   Options
	kind   kind[T]
	logger *Logger
}

// NewPointTree creates a tree over point items covering bounds.
//
//	tree, err := tpntree.NewPointTree[string](bounds, func(o *tpntree.Options) {
//	    o.MaxItemsPerLeaf = 4
//	})
func NewPointTree[V comparable](bounds geom.Region, optFns ...func(o *Options)) (*Tree[PointItem[V]], error) {
	return newTree(bounds, pointKind[V](), optFns)
}

// NewRegionTree creates a tree over region (bounding-box) items covering
// bounds.
func NewRegionTree[V comparable](bounds geom.Region, optFns ...func(o *Options)) (*Tree[RegionItem[V]], error) {
	return newTree(bounds, regionKind[V](), optFns)
}

func newTree[T any](bounds geom.Region, k kind[T], optFns []func(o *Options)) (*Tree[T], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	n := bounds.Dim()
	if n < 1 || n > MaxDimension || bounds.Max.Dim() != n {
		return nil, &ErrInvalidDimension{Dimension: n}
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	t := &Tree[T]{
		nodes:  arena.New[node[T]](1),
		bounds: bounds,
		dim:    n,
		opts:   opts,
		kind:   k,
		logger: opts.Logger.WithDimension(n),
	}
	// Root lives at arena index 0 for the lifetime of the tree.
	t.root = t.nodes.Alloc(node[T]{region: bounds})
	return t, nil
}

// Insert adds item to the tree. It fails atomically, before any mutation,
// when the item's dimension disagrees with the tree (ErrDimensionMismatch),
// the item's region is malformed (ErrInvalidRegion), or the item does not
// lie within the tree bounds (ErrOutOfBounds).
func (t *Tree[T]) Insert(item T) error {
	if err := t.checkItem(item); err != nil {
		return err
	}
	if !t.kind.inBounds(item, t.bounds) {
		return ErrOutOfBounds
	}
	t.place(t.root, item)
	t.size++
	return nil
}

// Remove deletes one stored item equal to item. Duplicates are removed one
// occurrence per call. Returns ErrNotFound when no match exists; the tree is
// left unchanged in that case.
func (t *Tree[T]) Remove(item T) error {
	if err := t.checkItem(item); err != nil {
		return err
	}

	// Placement is deterministic, so the item can only live on the single
	// root path its orthant routing selects.
	ref := t.root
	for {
		n := t.nodes.MustGet(ref)
		for i := range n.items {
			if t.kind.equal(n.items[i], item) {
				n.items = slices.Delete(n.items, i, i+1)
				t.size--
				return nil
			}
		}
		if n.leaf() {
			return ErrNotFound
		}
		idx, ok := t.kind.orthant(item, n.region)
		if !ok {
			// A straddler would have been stored right here.
			return ErrNotFound
		}
		ref = n.children[idx]
	}
}

// Compact collapses every subtree whose children are all empty leaves back
// into a single leaf, releasing the freed nodes to the arena. Removal never
// does this automatically; Compact is an explicit maintenance pass. Returns
// the number of nodes freed.
func (t *Tree[T]) Compact() int {
	freed := t.compactAt(t.root)
	if freed > 0 {
		t.logger.Debug("tree compacted", "freed_nodes", freed)
	}
	return freed
}

func (t *Tree[T]) checkItem(item T) error {
	if d := t.kind.dim(item); d != t.dim {
		return &ErrDimensionMismatch{Expected: t.dim, Actual: d}
	}
	return t.kind.validate(item)
}

func (t *Tree[T]) checkRegion(q geom.Region) error {
	if d := q.Dim(); d != t.dim || q.Max.Dim() != t.dim {
		return &ErrDimensionMismatch{Expected: t.dim, Actual: d}
	}
	return q.Validate()
}

// Len returns the number of stored items.
func (t *Tree[T]) Len() int { return t.size }

// Dimension returns the tree's dimension N.
func (t *Tree[T]) Dimension() int { return t.dim }

// Bounds returns the root bounding region.
func (t *Tree[T]) Bounds() geom.Region { return t.bounds }

// NodeCount returns the number of live nodes, internal and leaf.
func (t *Tree[T]) NodeCount() int { return t.nodes.Len() }

// Depth returns the depth of the deepest node; a tree that never subdivided
// has depth 0.
func (t *Tree[T]) Depth() int {
	depth := 0
	for info := range t.Nodes() {
		depth = max(depth, info.Depth)
	}
	return depth
}

// Stats is a point-in-time structural snapshot of a tree.
type Stats struct {
	Dimension int
	Items     int
	Nodes     int
	Leaves    int
	Depth     int
}

// Stats walks the tree and returns a structural snapshot.
func (t *Tree[T]) Stats() Stats {
	s := Stats{
		Dimension: t.dim,
		Items:     t.size,
		Nodes:     t.nodes.Len(),
	}
	for info := range t.Nodes() {
		if info.Leaf {
			s.Leaves++
		}
		s.Depth = max(s.Depth, info.Depth)
	}
	return s
}
