package avl

import "github.com/pkg/errors"

func (t *tree) Check() error {
	if t == nil {
		return nil
	}

	count, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return errors.Wrapf(ErrSizeMismatch, "counted %d, size %d", count, t.size)
	}
	return nil
}

// internal: consistency checker, values of the subtree at idx must lie
// strictly between lo and hi when those are set. Returns the node count.
func (t *tree) check(idx int, lo, hi *int) (int, error) {
	if idx == nullIdx {
		return 0, nil
	}

	n := &t.nodes[idx]
	if (lo != nil && n.value <= *lo) || (hi != nil && n.value >= *hi) {
		return 0, errors.Wrapf(ErrOutOfOrder, "node %d", n.value)
	}

	lc, err := t.check(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rc, err := t.check(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}

	lh, rh := t.height(n.left), t.height(n.right)
	if n.height != max(lh, rh)+1 {
		return 0, errors.Wrapf(ErrHeightMismatch, "node %d: cached %d, actual %d", n.value, n.height, max(lh, rh)+1)
	}
	if bf := lh - rh; bf > maxBalance || bf < minBalance {
		return 0, errors.Wrapf(ErrUnbalanced, "node %d: balance %+d", n.value, bf)
	}

	return lc + rc + 1, nil
}
