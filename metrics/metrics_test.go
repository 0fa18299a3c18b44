package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilvanCodes/tpntree"
	"github.com/SilvanCodes/tpntree/geom"
)

func TestCollector(t *testing.T) {
	bounds, err := geom.NewRegion(geom.Point{0, 0}, geom.Point{100, 100})
	require.NoError(t, err)
	tree, err := tpntree.NewPointTree[int](bounds, func(o *tpntree.Options) { o.MaxItemsPerLeaf = 1 })
	require.NoError(t, err)

	for i, p := range []geom.Point{{10, 10}, {90, 90}, {10, 90}, {90, 10}} {
		require.NoError(t, tree.Insert(tpntree.PointItem[int]{Point: p, Value: i}))
	}

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(tree, "test")))

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		got[mf.GetName()] = m.GetGauge().GetValue()

		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, "tree", m.GetLabel()[0].GetName())
		assert.Equal(t, "test", m.GetLabel()[0].GetValue())
	}

	assert.Equal(t, map[string]float64{
		"tpntree_items":  4,
		"tpntree_nodes":  5,
		"tpntree_leaves": 4,
		"tpntree_depth":  1,
	}, got)
}

func TestCollectorTracksMutation(t *testing.T) {
	bounds, err := geom.NewRegion(geom.Point{0}, geom.Point{10})
	require.NoError(t, err)
	tree, err := tpntree.NewPointTree[int](bounds)
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(tree, "live")))

	gauge := func(name string) float64 {
		families, err := reg.Gather()
		require.NoError(t, err)
		for _, mf := range families {
			if mf.GetName() == name {
				return mf.GetMetric()[0].GetGauge().GetValue()
			}
		}
		t.Fatalf("metric %s not found", name)
		return 0
	}

	assert.Equal(t, 0.0, gauge("tpntree_items"))

	item := tpntree.PointItem[int]{Point: geom.Point{3}, Value: 1}
	require.NoError(t, tree.Insert(item))
	assert.Equal(t, 1.0, gauge("tpntree_items"))

	require.NoError(t, tree.Remove(item))
	assert.Equal(t, 0.0, gauge("tpntree_items"))
}
