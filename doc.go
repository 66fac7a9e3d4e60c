// Package avl implements an AVL balanced search tree over int values.
//
// After every insertion the heights of the two subtrees of any node differ
// by at most one, so both Insert and Search are O(log n). Inserting a value
// that is already present leaves the tree untouched.
//
// Nodes live in a slice owned by the tree and refer to their children by
// index instead of by pointer.
//
// Note: a tree returned by New is not safe for concurrent use, either
// access it from a single goroutine or use NewSync, which serializes
// inserts behind a read/write lock.
package avl
