package avl

import "github.com/pkg/errors"

var (
	ErrOutOfOrder     = errors.New("value out of search order")
	ErrUnbalanced     = errors.New("subtree heights differ by more than one")
	ErrHeightMismatch = errors.New("cached height is stale")
	ErrSizeMismatch   = errors.New("node count differs from size")
)
