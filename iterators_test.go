package tpntree

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilvanCodes/tpntree/geom"
)

func buildQuadrants(t *testing.T) *Tree[PointItem[int]] {
	t.Helper()
	bounds := mustRegion(t, geom.Point{0, 0}, geom.Point{100, 100})
	tree, err := NewPointTree[int](bounds, func(o *Options) { o.MaxItemsPerLeaf = 1 })
	require.NoError(t, err)
	for i, p := range []geom.Point{{10, 10}, {90, 90}, {10, 90}, {90, 10}} {
		require.NoError(t, tree.Insert(PointItem[int]{Point: p, Value: i}))
	}
	return tree
}

func TestNodes(t *testing.T) {
	tree := buildQuadrants(t)

	var infos []NodeInfo
	for info := range tree.Nodes() {
		infos = append(infos, info)
	}
	require.Len(t, infos, 5)

	root := infos[0]
	assert.Equal(t, 0, root.Depth)
	assert.False(t, root.Leaf)
	assert.Equal(t, 0, root.Items)
	assert.True(t, root.Region.Equal(tree.Bounds()))

	// Pre-order: orthant 0 right after the root.
	assert.True(t, infos[1].Region.Equal(geom.Region{Min: geom.Point{0, 0}, Max: geom.Point{50, 50}}))
	for _, info := range infos[1:] {
		assert.Equal(t, 1, info.Depth)
		assert.True(t, info.Leaf)
		assert.Equal(t, 1, info.Items)
	}
}

func TestNodesBreadthFirst(t *testing.T) {
	bounds := mustRegion(t, geom.Point{0, 0}, geom.Point{100, 100})
	tree, err := NewPointTree[int](bounds, func(o *Options) { o.MaxItemsPerLeaf = 1 })
	require.NoError(t, err)
	// Force a depth-2 split in one quadrant.
	require.NoError(t, tree.Insert(pt(0, 10, 10)))
	require.NoError(t, tree.Insert(pt(1, 40, 40)))

	prev := 0
	count := 0
	for info := range tree.NodesBreadthFirst() {
		assert.GreaterOrEqual(t, info.Depth, prev, "levels in order")
		prev = info.Depth
		count++
	}
	assert.Equal(t, 9, count)
	assert.Equal(t, 2, prev)
}

func TestNodesEarlyTermination(t *testing.T) {
	tree := buildQuadrants(t)

	for name, seq := range map[string]iter.Seq[NodeInfo]{
		"DepthFirst":   tree.Nodes(),
		"BreadthFirst": tree.NodesBreadthFirst(),
	} {
		t.Run(name, func(t *testing.T) {
			seen := 0
			for range seq {
				seen++
				if seen == 2 {
					break
				}
			}
			assert.Equal(t, 2, seen)
		})
	}
}
