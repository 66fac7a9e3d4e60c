package avl

const (
	// index of an absent child or of the root of an empty tree
	nullIdx = -1

	// height of a freshly created node
	leafHeight = 1

	// balance factor bounds
	maxBalance = 1
	minBalance = -1
)

type (
	tree struct {
		size int
		root int
		// arena of nodes, children point into it by index
		nodes []node
		opts  *options
	}

	node struct {
		value  int
		left   int
		right  int
		height int
	}

	// to control the print routine
	branch int
)

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

func newTree(opts ...Option) *tree {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}

	return &tree{
		root:  nullIdx,
		nodes: make([]node, 0, o.capacity),
		opts:  o,
	}
}

// newNode appends a leaf to the arena and returns its index.
func (t *tree) newNode(value int) int {
	t.nodes = append(t.nodes, node{
		value:  value,
		left:   nullIdx,
		right:  nullIdx,
		height: leafHeight,
	})
	return len(t.nodes) - 1
}
