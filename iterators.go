package tpntree

import (
	"iter"

	"github.com/SilvanCodes/tpntree/geom"
	"github.com/SilvanCodes/tpntree/internal/arena"
)

// NodeInfo describes one tree node for introspection consumers such as
// debuggers and external visualizers.
type NodeInfo struct {
	Region geom.Region
	Depth  int
	Leaf   bool
	Items  int
}

// Nodes returns a depth-first (pre-order) iterator over all nodes, starting
// at the root; children are visited in orthant order.
//
// The tree must not be mutated while iterating.
func (t *Tree[T]) Nodes() iter.Seq[NodeInfo] {
	return func(yield func(NodeInfo) bool) {
		stack := []arena.Ref{t.root}
		for len(stack) > 0 {
			ref := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.nodes.MustGet(ref)
			if !yield(nodeInfo(n)) {
				return
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}

// NodesBreadthFirst returns a breadth-first iterator over all nodes, level
// by level starting at the root.
//
// The tree must not be mutated while iterating.
func (t *Tree[T]) NodesBreadthFirst() iter.Seq[NodeInfo] {
	return func(yield func(NodeInfo) bool) {
		next := []arena.Ref{t.root}
		for len(next) > 0 {
			ref := next[0]
			next = next[1:]
			n := t.nodes.MustGet(ref)
			if !yield(nodeInfo(n)) {
				return
			}
			next = append(next, n.children...)
		}
	}
}

func nodeInfo[T any](n *node[T]) NodeInfo {
	return NodeInfo{
		Region: n.region,
		Depth:  n.depth,
		Leaf:   n.leaf(),
		Items:  len(n.items),
	}
}
