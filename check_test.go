package avl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	dataSet := []struct {
		name     string
		tree     *tree
		expected error
	}{
		{
			"empty",
			newTree(),
			nil,
		},
		{
			"balanced",
			buildTree(4, 2, 6, 1, 3, 5, 7),
			nil,
		},
		{
			"out of order",
			arena(0,
				node{value: 2, left: 1, right: 2, height: 2},
				node{value: 3, left: nullIdx, right: nullIdx, height: 1},
				node{value: 4, left: nullIdx, right: nullIdx, height: 1},
			),
			ErrOutOfOrder,
		},
		{
			"duplicate value",
			arena(0,
				node{value: 2, left: 1, right: nullIdx, height: 2},
				node{value: 2, left: nullIdx, right: nullIdx, height: 1},
			),
			ErrOutOfOrder,
		},
		{
			// 5 sits right of 2 but inside the left subtree of 4
			"out of order deep",
			arena(0,
				node{value: 4, left: 1, right: nullIdx, height: 3},
				node{value: 2, left: nullIdx, right: 2, height: 2},
				node{value: 5, left: nullIdx, right: nullIdx, height: 1},
			),
			ErrOutOfOrder,
		},
		{
			"stale height",
			arena(0,
				node{value: 2, left: 1, right: nullIdx, height: 1},
				node{value: 1, left: nullIdx, right: nullIdx, height: 1},
			),
			ErrHeightMismatch,
		},
		{
			"unbalanced",
			arena(0,
				node{value: 1, left: nullIdx, right: 1, height: 3},
				node{value: 2, left: nullIdx, right: 2, height: 2},
				node{value: 3, left: nullIdx, right: nullIdx, height: 1},
			),
			ErrUnbalanced,
		},
	}

	for _, d := range dataSet {
		err := d.tree.Check()
		if d.expected == nil {
			assert.NoError(t, err, d.name)
			continue
		}
		assert.Error(t, err, d.name)
		assert.True(t, errors.Is(err, d.expected), "%s: %v", d.name, err)
		assert.Equal(t, d.expected, errors.Cause(err), d.name)
	}
}

func TestCheckSizeMismatch(t *testing.T) {
	tr := buildTree(1, 2, 3)
	tr.size++

	err := tr.Check()
	assert.True(t, errors.Is(err, ErrSizeMismatch), err)
	assert.Contains(t, err.Error(), "counted 3, size 4")
}

func TestCheckNilTree(t *testing.T) {
	var tr *tree
	assert.NoError(t, tr.Check())
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, 0, tr.Height())
	assert.False(t, tr.Search(1))
}
