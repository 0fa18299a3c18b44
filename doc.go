// Package tpntree implements an N-dimensional region-partitioning tree: the
// generalization of quadtrees (N=2) and octrees (N=3) where every internal
// node splits its region into 2^N equal orthants, one per combination of
// lower/upper half along each axis.
//
// A tree stores either point items or region (bounding-box) items and
// supports range queries and k-nearest-neighbor queries with region-based
// pruning.
//
// # Quick Start
//
//	bounds, _ := geom.NewRegion(geom.Point{0, 0}, geom.Point{100, 100})
//	tree, _ := tpntree.NewPointTree[string](bounds)
//
//	_ = tree.Insert(tpntree.PointItem[string]{Point: geom.Point{10, 10}, Value: "a"})
//	_ = tree.Insert(tpntree.PointItem[string]{Point: geom.Point{90, 90}, Value: "b"})
//
//	q, _ := geom.NewRegion(geom.Point{0, 0}, geom.Point{50, 50})
//	hits, _ := tree.QueryRange(q)
//
//	near, _ := tree.Nearest(geom.Point{12, 12}, 1)
//
// # Streaming Queries
//
// QueryRangeStream and NearestStream return iterators that yield results
// lazily. Stop iterating to terminate early:
//
//	for item, err := range tree.QueryRangeStream(q) {
//	    if err != nil {
//	        return err
//	    }
//	    if enough(item) {
//	        break
//	    }
//	}
//
// # Concurrency
//
// A Tree is a plain synchronous data structure and is not safe for
// concurrent use. Wrap it in your own locking, or use package sharded for a
// concurrent point tree partitioned by root orthant.
package tpntree
