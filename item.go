package tpntree

import "github.com/SilvanCodes/tpntree/geom"

// PointItem associates a payload with a point location. A point tree stores
// every item in exactly one leaf.
type PointItem[V comparable] struct {
	Point geom.Point
	Value V
}

// RegionItem associates a payload with an axis-aligned extent. Items whose
// extent straddles a split plane are held at the internal node above the
// split instead of being duplicated into several children.
type RegionItem[V comparable] struct {
	Region geom.Region
	Value  V
}

// kind is the item capability table: the only place where point trees and
// region trees differ. Everything else runs the same algorithm.
type kind[T any] struct {
	// dim returns the item's dimensionality.
	dim func(T) int
	// validate checks item well-formedness (region corner order).
	validate func(T) error
	// inBounds reports whether the item lies fully inside r.
	inBounds func(T, geom.Region) bool
	// matches reports whether the item satisfies a range query over q.
	matches func(T, geom.Region) bool
	// orthant returns the unique child orthant of r holding the item, or
	// ok=false when the item straddles more than one orthant.
	orthant func(T, geom.Region) (idx int, ok bool)
	// minDist returns the Euclidean distance from p to the item.
	minDist func(T, geom.Point) float64
	// equal reports item equality for removal.
	equal func(T, T) bool
}

func pointKind[V comparable]() kind[PointItem[V]] {
	return kind[PointItem[V]]{
		dim: func(it PointItem[V]) int { return it.Point.Dim() },
		validate: func(PointItem[V]) error {
			return nil
		},
		inBounds: func(it PointItem[V], r geom.Region) bool {
			return r.ContainsPoint(it.Point)
		},
		matches: func(it PointItem[V], q geom.Region) bool {
			return q.ContainsPoint(it.Point)
		},
		orthant: func(it PointItem[V], r geom.Region) (int, bool) {
			return r.Orthant(it.Point), true
		},
		minDist: func(it PointItem[V], p geom.Point) float64 {
			return geom.Distance(p, it.Point)
		},
		equal: func(a, b PointItem[V]) bool {
			return a.Value == b.Value && a.Point.Equal(b.Point)
		},
	}
}

func regionKind[V comparable]() kind[RegionItem[V]] {
	return kind[RegionItem[V]]{
		dim: func(it RegionItem[V]) int { return it.Region.Dim() },
		validate: func(it RegionItem[V]) error {
			if n, m := it.Region.Min.Dim(), it.Region.Max.Dim(); n != m {
				return &geom.ErrDimensionMismatch{Expected: n, Actual: m}
			}
			return it.Region.Validate()
		},
		inBounds: func(it RegionItem[V], r geom.Region) bool {
			return r.ContainsRegion(it.Region)
		},
		matches: func(it RegionItem[V], q geom.Region) bool {
			return q.Overlaps(it.Region)
		},
		orthant: regionOrthant[V],
		minDist: func(it RegionItem[V], p geom.Point) float64 {
			return it.Region.MinDist(p)
		},
		equal: func(a, b RegionItem[V]) bool {
			return a.Value == b.Value && a.Region.Equal(b.Region)
		},
	}
}

// regionOrthant locates the single child orthant of r that the item overlaps.
// Per axis, the item sits strictly below the midpoint, strictly above it, or
// touches it; touching means it overlaps both halves (bounds are inclusive),
// so the item straddles and stays at the parent.
func regionOrthant[V comparable](it RegionItem[V], r geom.Region) (int, bool) {
	idx := 0
	for i := range r.Min {
		mid := r.Min[i] + (r.Max[i]-r.Min[i])/2
		switch {
		case it.Region.Max[i] < mid:
			// lower half, bit stays 0
		case it.Region.Min[i] > mid:
			idx |= 1 << i
		default:
			return 0, false
		}
	}
	return idx, true
}
