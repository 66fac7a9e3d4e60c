package avl

import "io"

type Tree interface {
	// Insert adds value to the tree, returns false if it was already present.
	Insert(value int) bool
	Search(value int) bool
	Size() int
	Height() int
	// Check walks the whole tree and reports the first broken invariant.
	Check() error
	// Print writes an ASCII rendering of the tree and returns its depth.
	Print(w io.Writer) int
}

func New(opts ...Option) Tree {
	return newTree(opts...)
}

// NewSync returns a tree guarded by a read/write lock, inserts are exclusive.
func NewSync(opts ...Option) Tree {
	return &syncTree{t: newTree(opts...)}
}
