package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a broken tree.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrInvalidDimension signals an invalid or missing dimension configuration.
	ErrInvalidDimension = errors.New("btree: invalid dimension")
)
