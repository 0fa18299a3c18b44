package sharded

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilvanCodes/tpntree"
	"github.com/SilvanCodes/tpntree/geom"
	"github.com/SilvanCodes/tpntree/testutil"
)

func mustRegion(t *testing.T, min, max geom.Point) geom.Region {
	t.Helper()
	r, err := geom.NewRegion(min, max)
	require.NoError(t, err)
	return r
}

func TestSharded(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(31)
	bounds := mustRegion(t, geom.Point{0, 0}, geom.Point{100, 100})

	tree, err := New[int](bounds, func(o *tpntree.Options) { o.MaxItemsPerLeaf = 4 })
	require.NoError(t, err)
	assert.Equal(t, 4, tree.NumShards())
	assert.Equal(t, 2, tree.Dimension())

	points := rng.Points(200, bounds)
	for i, p := range points {
		require.NoError(t, tree.Insert(tpntree.PointItem[int]{Point: p, Value: i}))
	}
	assert.Equal(t, 200, tree.Len())

	t.Run("QueryRange", func(t *testing.T) {
		hits, err := tree.QueryRange(ctx, bounds)
		require.NoError(t, err)
		assert.Len(t, hits, 200)

		q := rng.Subregion(bounds)
		hits, err = tree.QueryRange(ctx, q)
		require.NoError(t, err)

		got := make([]geom.Point, 0, len(hits))
		for _, h := range hits {
			got = append(got, h.Point)
		}
		assert.ElementsMatch(t, testutil.BruteForceRange(points, q), got)
	})

	t.Run("Nearest", func(t *testing.T) {
		const k = 7
		q := rng.Point(bounds)

		got, err := tree.Nearest(ctx, q, k)
		require.NoError(t, err)
		require.Len(t, got, k)

		want := testutil.BruteForceNearest(points, q, k)
		for i := range got {
			assert.InDelta(t, geom.Distance(q, want[i]), got[i].Distance, 1e-12, "rank %d", i)
		}
	})

	t.Run("NearestEdgeCases", func(t *testing.T) {
		got, err := tree.Nearest(ctx, geom.Point{50, 50}, 0)
		require.NoError(t, err)
		assert.Empty(t, got)

		_, err = tree.Nearest(ctx, geom.Point{50, 50}, -1)
		assert.ErrorIs(t, err, tpntree.ErrInvalidK)
	})

	t.Run("Remove", func(t *testing.T) {
		item := tpntree.PointItem[int]{Point: points[0], Value: 0}
		require.NoError(t, tree.Remove(item))
		assert.Equal(t, 199, tree.Len())
		assert.ErrorIs(t, tree.Remove(item), tpntree.ErrNotFound)
	})

	t.Run("RouteErrors", func(t *testing.T) {
		err := tree.Insert(tpntree.PointItem[int]{Point: geom.Point{200, 200}, Value: 0})
		assert.ErrorIs(t, err, tpntree.ErrOutOfBounds)

		err = tree.Insert(tpntree.PointItem[int]{Point: geom.Point{1, 2, 3}, Value: 0})
		var mismatch *tpntree.ErrDimensionMismatch
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestShardedConcurrent(t *testing.T) {
	ctx := context.Background()
	bounds, err := geom.NewRegion(geom.Point{0, 0}, geom.Point{100, 100})
	require.NoError(t, err)

	tree, err := New[int](bounds, func(o *tpntree.Options) { o.MaxItemsPerLeaf = 2 })
	require.NoError(t, err)

	const (
		writers        = 8
		pointsPerBatch = 50
	)

	batches := make([][]tpntree.PointItem[int], writers)
	for w := range batches {
		rng := testutil.NewRNG(int64(100 + w))
		batch := make([]tpntree.PointItem[int], pointsPerBatch)
		for i := range batch {
			batch[i] = tpntree.PointItem[int]{Point: rng.Point(bounds), Value: w*1000 + i}
		}
		batches[w] = batch
	}

	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, item := range batches[w] {
				assert.NoError(t, tree.Insert(item))
			}
		}()
	}
	// Readers run against the tree while writers are still inserting.
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				_, err := tree.QueryRange(ctx, bounds)
				assert.NoError(t, err)
				_, err = tree.Nearest(ctx, geom.Point{50, 50}, 3)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*pointsPerBatch, tree.Len())

	hits, err := tree.QueryRange(ctx, bounds)
	require.NoError(t, err)
	assert.Len(t, hits, writers*pointsPerBatch)
}
