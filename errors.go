package tpntree

import (
	"errors"
	"fmt"

	"github.com/SilvanCodes/tpntree/geom"
)

var (
	// ErrNotFound is returned by Remove when no stored item matches.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must not be negative")

	// ErrInvalidOptions is returned when constructor options are out of range.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrOutOfBounds is returned by Insert when the item does not lie within
	// the tree's bounding region.
	ErrOutOfBounds = errors.New("item outside tree bounds")
)

// ErrDimensionMismatch indicates an operand whose dimension disagrees with
// the tree dimension.
type ErrDimensionMismatch = geom.ErrDimensionMismatch

// ErrInvalidRegion indicates a region with min > max on some axis.
type ErrInvalidRegion = geom.ErrInvalidRegion

// ErrInvalidDimension indicates an unsupported tree dimension.
type ErrInvalidDimension struct {
	Dimension int
}

// Error returns the error message for an invalid dimension.
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d (want 1 to %d)", e.Dimension, MaxDimension)
}
