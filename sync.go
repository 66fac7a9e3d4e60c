package avl

import (
	"io"
	"sync"
)

var _ Tree = (*syncTree)(nil)

type syncTree struct {
	mu sync.RWMutex
	t  *tree
}

func (s *syncTree) Insert(value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Insert(value)
}

func (s *syncTree) Search(value int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Search(value)
}

func (s *syncTree) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Size()
}

func (s *syncTree) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Height()
}

func (s *syncTree) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Check()
}

func (s *syncTree) Print(w io.Writer) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Print(w)
}
