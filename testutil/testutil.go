// Package testutil provides deterministic randomness and brute-force oracles
// for tree tests and benchmarks.
package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/SilvanCodes/tpntree/geom"
)

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Point returns a pseudo-random point inside region.
func (r *RNG) Point(region geom.Region) geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := make(geom.Point, region.Dim())
	for i := range p {
		p[i] = region.Min[i] + r.rand.Float64()*(region.Max[i]-region.Min[i])
	}
	return p
}

// Points returns num pseudo-random points inside region.
func (r *RNG) Points(num int, region geom.Region) []geom.Point {
	points := make([]geom.Point, num)
	for i := range points {
		points[i] = r.Point(region)
	}
	return points
}

// Subregion returns a pseudo-random well-formed region inside region.
func (r *RNG) Subregion(region geom.Region) geom.Region {
	a := r.Point(region)
	b := r.Point(region)
	lo := make(geom.Point, len(a))
	hi := make(geom.Point, len(a))
	for i := range a {
		lo[i] = min(a[i], b[i])
		hi[i] = max(a[i], b[i])
	}
	return geom.Region{Min: lo, Max: hi}
}

// BruteForceNearest is the linear-scan oracle for nearest-neighbor tests:
// it returns the k points closest to q in ascending distance order.
func BruteForceNearest(points []geom.Point, q geom.Point, k int) []geom.Point {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b geom.Point) int {
		da, db := geom.SquaredDistance(q, a), geom.SquaredDistance(q, b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// BruteForceRange is the linear-scan oracle for range-query tests: it
// returns every point contained in q.
func BruteForceRange(points []geom.Point, q geom.Region) []geom.Point {
	var out []geom.Point
	for _, p := range points {
		if q.ContainsPoint(p) {
			out = append(out, p)
		}
	}
	return out
}
