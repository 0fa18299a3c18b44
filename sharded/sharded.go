// Package sharded provides a concurrency-safe point tree partitioned by the
// 2^N orthants of the root region. Each shard is an independent tree guarded
// by its own read-write lock, so writes to different orthants proceed in
// parallel and queries fan out across shards.
//
// Sharding is coarse by design: a point routes to the shard whose orthant
// contains it, queries visit only the shards their region overlaps, and
// nearest-neighbor searches merge per-shard results.
package sharded

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/SilvanCodes/tpntree"
	"github.com/SilvanCodes/tpntree/geom"
)

type shard[V comparable] struct {
	mu   sync.RWMutex
	tree *tpntree.Tree[tpntree.PointItem[V]]
}

// Tree is an orthant-sharded point tree. Unlike tpntree.Tree it is safe for
// concurrent use.
type Tree[V comparable] struct {
	bounds  geom.Region
	dim     int
	regions []geom.Region
	shards  []*shard[V]
}

// New creates a sharded point tree covering bounds. Options apply to every
// shard tree.
func New[V comparable](bounds geom.Region, optFns ...func(o *tpntree.Options)) (*Tree[V], error) {
	regions := bounds.Subdivide()

	shards := make([]*shard[V], len(regions))
	for i, r := range regions {
		st, err := tpntree.NewPointTree[V](r, optFns...)
		if err != nil {
			return nil, err
		}
		shards[i] = &shard[V]{tree: st}
	}

	return &Tree[V]{
		bounds:  bounds,
		dim:     bounds.Dim(),
		regions: regions,
		shards:  shards,
	}, nil
}

// Dimension returns the tree's dimension N.
func (t *Tree[V]) Dimension() int { return t.dim }

// Bounds returns the overall bounding region.
func (t *Tree[V]) Bounds() geom.Region { return t.bounds }

// NumShards returns the number of shards (2^N).
func (t *Tree[V]) NumShards() int { return len(t.shards) }

// Len returns the total number of stored items across all shards.
func (t *Tree[V]) Len() int {
	total := 0
	for _, s := range t.shards {
		s.mu.RLock()
		total += s.tree.Len()
		s.mu.RUnlock()
	}
	return total
}

// Insert routes item to the shard owning its orthant and inserts it there.
func (t *Tree[V]) Insert(item tpntree.PointItem[V]) error {
	s, err := t.route(item)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(item)
}

// Remove deletes one occurrence of item from its shard.
func (t *Tree[V]) Remove(item tpntree.PointItem[V]) error {
	s, err := t.route(item)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Remove(item)
}

func (t *Tree[V]) route(item tpntree.PointItem[V]) (*shard[V], error) {
	if d := item.Point.Dim(); d != t.dim {
		return nil, &tpntree.ErrDimensionMismatch{Expected: t.dim, Actual: d}
	}
	if !t.bounds.ContainsPoint(item.Point) {
		return nil, tpntree.ErrOutOfBounds
	}
	return t.shards[t.bounds.Orthant(item.Point)], nil
}

// QueryRange collects matches from every shard whose orthant overlaps q,
// fanning the shard scans out across goroutines. Result order is
// unspecified.
func (t *Tree[V]) QueryRange(ctx context.Context, q geom.Region) ([]tpntree.PointItem[V], error) {
	if d := q.Dim(); d != t.dim || q.Max.Dim() != t.dim {
		return nil, &tpntree.ErrDimensionMismatch{Expected: t.dim, Actual: d}
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	partial := make([][]tpntree.PointItem[V], len(t.shards))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range t.shards {
		if !t.regions[i].Overlaps(q) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.mu.RLock()
			defer s.mu.RUnlock()
			hits, err := s.tree.QueryRange(q)
			if err != nil {
				return err
			}
			partial[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []tpntree.PointItem[V]
	for _, hits := range partial {
		out = append(out, hits...)
	}
	return out, nil
}

// Nearest runs a k-nearest search on every shard concurrently and merges the
// per-shard results into the global k best, ascending by distance.
func (t *Tree[V]) Nearest(ctx context.Context, p geom.Point, k int) ([]tpntree.Neighbor[tpntree.PointItem[V]], error) {
	if k < 0 {
		return nil, tpntree.ErrInvalidK
	}
	if d := p.Dim(); d != t.dim {
		return nil, &tpntree.ErrDimensionMismatch{Expected: t.dim, Actual: d}
	}
	if k == 0 {
		return nil, nil
	}

	partial := make([][]tpntree.Neighbor[tpntree.PointItem[V]], len(t.shards))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range t.shards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.mu.RLock()
			defer s.mu.RUnlock()
			near, err := s.tree.Nearest(p, k)
			if err != nil {
				return err
			}
			partial[i] = near
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []tpntree.Neighbor[tpntree.PointItem[V]]
	for _, near := range partial {
		merged = append(merged, near...)
	}
	slices.SortStableFunc(merged, func(a, b tpntree.Neighbor[tpntree.PointItem[V]]) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged, nil
}
