package avl

import (
	"fmt"
	"io"
)

const (
	indentBlank = "       "
	indentBar   = "|      "
)

// Print renders the tree sideways, right subtree on top, each line showing
// value, cached height and balance factor. Returns the depth of the tree.
func (t *tree) Print(w io.Writer) int {
	if t == nil {
		return 0
	}
	return t.printTree(w, t.root, "", rootBranch)
}

func (t *tree) printTree(w io.Writer, idx int, prefix string, br branch) int {
	if idx == nullIdx {
		return 0
	}

	n := &t.nodes[idx]
	rd, ld := 0, 0

	if n.right != nullIdx {
		indent := indentBlank
		if br == leftBranch {
			indent = indentBar
		}
		rd = t.printTree(w, n.right, prefix+indent, rightBranch)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d h:%d %+d\n", n.value, n.height, t.balanceFactor(idx))

	if n.left != nullIdx {
		indent := indentBlank
		if br == rightBranch {
			indent = indentBar
		}
		ld = t.printTree(w, n.left, prefix+indent, leftBranch)
	}

	return 1 + max(rd, ld)
}
