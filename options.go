package tpntree

import "fmt"

// MaxDimension caps the tree dimension. Every subdivision allocates 2^N
// child nodes, so dimensions beyond this are not usable in practice.
const MaxDimension = 16

// Options contains configuration options for a tree.
type Options struct {
	// MaxItemsPerLeaf is the leaf capacity that triggers subdivision.
	// It must be >= 1. It is a soft limit: leaves at MaxDepth grow past it
	// instead of splitting, which keeps coincident items from forcing
	// unbounded subdivision.
	MaxItemsPerLeaf int

	// MaxDepth is the deepest level at which subdivision may still create
	// children; the root is level 0.
	MaxDepth int

	// Logger receives structural events (subdivision, compaction) at debug
	// level. Defaults to a no-op logger.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for a tree.
var DefaultOptions = Options{
	MaxItemsPerLeaf: 8,
	MaxDepth:        32,
}

func (o Options) validate() error {
	if o.MaxItemsPerLeaf < 1 {
		return fmt.Errorf("%w: MaxItemsPerLeaf must be >= 1, got %d", ErrInvalidOptions, o.MaxItemsPerLeaf)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrInvalidOptions, o.MaxDepth)
	}
	return nil
}
