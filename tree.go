package avl

func (t *tree) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *tree) Height() int {
	if t == nil {
		return 0
	}
	return t.height(t.root)
}

func (t *tree) Insert(value int) bool {
	root, added := t.recursiveInsert(t.root, value)
	t.root = root
	if added {
		t.size++
	}
	return added
}

// recursiveInsert returns the new root of the subtree at idx and whether
// value was added. The arena may grow during the call, so no node pointer
// is held across the recursion.
func (t *tree) recursiveInsert(idx int, value int) (int, bool) {
	if idx == nullIdx {
		return t.newNode(value), true
	}

	added := false
	switch cur := t.nodes[idx].value; {
	case value < cur:
		child, ok := t.recursiveInsert(t.nodes[idx].left, value)
		t.nodes[idx].left = child
		added = ok
	case value > cur:
		child, ok := t.recursiveInsert(t.nodes[idx].right, value)
		t.nodes[idx].right = child
		added = ok
	default:
		// already present, rebalance below is a no-op
	}

	return t.rebalance(idx), added
}

func (t *tree) Search(value int) bool {
	if t == nil {
		return false
	}

	curr := t.root
	for curr != nullIdx {
		n := &t.nodes[curr]
		switch {
		case value < n.value:
			curr = n.left
		case value > n.value:
			curr = n.right
		default:
			return true
		}
	}
	return false
}
