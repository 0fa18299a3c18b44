// Package geom provides the N-dimensional point and axis-aligned region
// primitives used by the tree. All bounds are inclusive; callers that need
// half-open tiling should shrink their own query regions.
package geom

import (
	"fmt"
	"math"
	"slices"
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidRegion indicates a region whose min corner exceeds its max corner
// on some axis.
type ErrInvalidRegion struct {
	Axis     int
	Min, Max float64
}

// Error returns the error message for an invalid region.
func (e *ErrInvalidRegion) Error() string {
	return fmt.Sprintf("invalid region: min %v > max %v on axis %d", e.Min, e.Max, e.Axis)
}

// Point is an immutable N-dimensional coordinate.
type Point []float64

// Dim returns the number of dimensions of the point.
func (p Point) Dim() int { return len(p) }

// Equal reports component-wise equality.
func (p Point) Equal(q Point) bool {
	return slices.Equal(p, q)
}

// Clone returns a copy of the point.
func (p Point) Clone() Point {
	return slices.Clone(p)
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Assumes equal dimension (caller's responsibility).
func SquaredDistance(a, b Point) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance between a and b.
// Assumes equal dimension (caller's responsibility).
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Region is an N-dimensional axis-aligned bounding box given by its min and
// max corners, min <= max on every axis. A region with min == max on some
// axis is degenerate (zero volume) but still valid.
type Region struct {
	Min Point
	Max Point
}

// NewRegion builds a validated region from its corners.
func NewRegion(min, max Point) (Region, error) {
	if len(min) != len(max) {
		return Region{}, &ErrDimensionMismatch{Expected: len(min), Actual: len(max)}
	}
	r := Region{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// Dim returns the number of dimensions of the region.
func (r Region) Dim() int { return len(r.Min) }

// Validate checks the min <= max invariant on every axis.
func (r Region) Validate() error {
	for i := range r.Min {
		if r.Min[i] > r.Max[i] {
			return &ErrInvalidRegion{Axis: i, Min: r.Min[i], Max: r.Max[i]}
		}
	}
	return nil
}

// Equal reports corner-wise equality.
func (r Region) Equal(o Region) bool {
	return r.Min.Equal(o.Min) && r.Max.Equal(o.Max)
}

// ContainsPoint reports whether p lies inside r, boundary included.
// Assumes equal dimension.
func (r Region) ContainsPoint(p Point) bool {
	for i := range r.Min {
		if p[i] < r.Min[i] || p[i] > r.Max[i] {
			return false
		}
	}
	return true
}

// ContainsRegion reports whether o lies entirely inside r, boundary included.
// Assumes equal dimension.
func (r Region) ContainsRegion(o Region) bool {
	for i := range r.Min {
		if o.Min[i] < r.Min[i] || o.Max[i] > r.Max[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether the closed intervals of r and o intersect on
// every axis. Touching boundaries count as overlap.
// Assumes equal dimension.
func (r Region) Overlaps(o Region) bool {
	for i := range r.Min {
		if r.Max[i] < o.Min[i] || r.Min[i] > o.Max[i] {
			return false
		}
	}
	return true
}

// Center returns the midpoint of the region.
func (r Region) Center() Point {
	mid := make(Point, len(r.Min))
	for i := range r.Min {
		mid[i] = r.Min[i] + (r.Max[i]-r.Min[i])/2
	}
	return mid
}

// Subdivide bisects every axis at its midpoint and returns the 2^N orthant
// regions in bit-pattern order: bit i of the child index selects the lower
// (0) or upper (1) half of axis i. Degenerate axes produce children sharing
// the degenerate extent.
func (r Region) Subdivide() []Region {
	n := len(r.Min)
	mid := r.Center()

	children := make([]Region, 1<<n)
	for idx := range children {
		lo := make(Point, n)
		hi := make(Point, n)
		for i := 0; i < n; i++ {
			if idx&(1<<i) == 0 {
				lo[i], hi[i] = r.Min[i], mid[i]
			} else {
				lo[i], hi[i] = mid[i], r.Max[i]
			}
		}
		children[idx] = Region{Min: lo, Max: hi}
	}
	return children
}

// Orthant returns the child index of Subdivide that contains p, using the
// same bit-pattern convention: bit i is 1 iff p[i] >= mid[i]. Points on a
// split plane route to the upper half.
// Assumes equal dimension.
func (r Region) Orthant(p Point) int {
	idx := 0
	for i := range r.Min {
		mid := r.Min[i] + (r.Max[i]-r.Min[i])/2
		if p[i] >= mid {
			idx |= 1 << i
		}
	}
	return idx
}

// MinDist returns the Euclidean distance from p to the closest coordinate
// covered by r. It is zero when p lies inside r, and a lower bound on the
// distance from p to anything stored under r.
// Assumes equal dimension.
func (r Region) MinDist(p Point) float64 {
	var sum float64
	for i := range r.Min {
		var d float64
		switch {
		case p[i] < r.Min[i]:
			d = r.Min[i] - p[i]
		case p[i] > r.Max[i]:
			d = p[i] - r.Max[i]
		}
		sum += d * d
	}
	return math.Sqrt(sum)
}
