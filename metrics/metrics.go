// Package metrics exposes tree structure statistics as Prometheus metrics.
//
// A library cannot register process-global metrics without colliding with
// its host application, so the package provides a prometheus.Collector that
// snapshots a tree on every scrape:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector(tree, "positions"))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/SilvanCodes/tpntree"
)

const treeLabel = "tree"

// StatsProvider is anything that can report tree structure statistics.
// *tpntree.Tree implements it; callers wrapping a tree in a lock should
// implement it with the lock held.
type StatsProvider interface {
	Stats() tpntree.Stats
}

// Collector collects structural gauges from a StatsProvider on every scrape.
type Collector struct {
	provider StatsProvider

	items  *prometheus.Desc
	nodes  *prometheus.Desc
	leaves *prometheus.Desc
	depth  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for provider. The name labels every
// metric so several trees can register against one registry.
func NewCollector(provider StatsProvider, name string) *Collector {
	labels := prometheus.Labels{treeLabel: name}
	return &Collector{
		provider: provider,
		items: prometheus.NewDesc(
			"tpntree_items",
			"The number of items stored in the tree.",
			nil, labels,
		),
		nodes: prometheus.NewDesc(
			"tpntree_nodes",
			"The number of nodes in the tree, internal and leaf.",
			nil, labels,
		),
		leaves: prometheus.NewDesc(
			"tpntree_leaves",
			"The number of leaf nodes in the tree.",
			nil, labels,
		),
		depth: prometheus.NewDesc(
			"tpntree_depth",
			"The depth of the deepest node in the tree.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.items
	ch <- c.nodes
	ch <- c.leaves
	ch <- c.depth
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.provider.Stats()
	ch <- prometheus.MustNewConstMetric(c.items, prometheus.GaugeValue, float64(s.Items))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Nodes))
	ch <- prometheus.MustNewConstMetric(c.leaves, prometheus.GaugeValue, float64(s.Leaves))
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(s.Depth))
}
