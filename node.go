package avl

func (t *tree) height(idx int) int {
	if idx == nullIdx {
		return 0
	}
	return t.nodes[idx].height
}

// height(left) - height(right)
func (t *tree) balanceFactor(idx int) int {
	if idx == nullIdx {
		return 0
	}
	n := &t.nodes[idx]
	return t.height(n.left) - t.height(n.right)
}

func (t *tree) updateHeight(idx int) {
	n := &t.nodes[idx]
	n.height = max(t.height(n.left), t.height(n.right)) + 1
}

// promote the left child above idx, returns the new subtree root
func (t *tree) rotateRight(idx int) int {
	n := &t.nodes[idx]
	pivot := n.left
	p := &t.nodes[pivot]

	n.left = p.right
	p.right = idx

	// idx is now the lower of the two
	t.updateHeight(idx)
	t.updateHeight(pivot)

	t.opts.logger.Log("rotate right: %d above %d", p.value, n.value)
	return pivot
}

// promote the right child above idx, returns the new subtree root
func (t *tree) rotateLeft(idx int) int {
	n := &t.nodes[idx]
	pivot := n.right
	p := &t.nodes[pivot]

	n.right = p.left
	p.left = idx

	t.updateHeight(idx)
	t.updateHeight(pivot)

	t.opts.logger.Log("rotate left: %d above %d", p.value, n.value)
	return pivot
}

// rebalance refreshes the cached height of idx and restores the balance
// invariant of its subtree. Both children must already be balanced.
func (t *tree) rebalance(idx int) int {
	t.updateHeight(idx)

	switch bf := t.balanceFactor(idx); {
	case bf > maxBalance:
		// left-right case
		if left := t.nodes[idx].left; t.balanceFactor(left) < 0 {
			t.nodes[idx].left = t.rotateLeft(left)
		}
		return t.rotateRight(idx)
	case bf < minBalance:
		// right-left case
		if right := t.nodes[idx].right; t.balanceFactor(right) > 0 {
			t.nodes[idx].right = t.rotateRight(right)
		}
		return t.rotateLeft(idx)
	}

	return idx
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
