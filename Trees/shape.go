package Trees

func height[K Number](cur *node[K]) int {
	if cur == nil {
		return -1
	}
	return max(height(cur.l), height(cur.r)) + 1
}

// Height [OrderedTree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[K]) Height() int {
	return height(u.root)
}

func countNodes[K Number](cur *node[K]) uint {
	if cur == nil {
		return 0
	}
	return countNodes(cur.l) + countNodes(cur.r) + 1
}

// CountNodes [OrderedTree.CountNodes]. Recursive.
// Time: O(n)
func (u *BSTree[K]) CountNodes() uint {
	return countNodes(u.root)
}

func countLeaves[K Number](cur *node[K]) uint {
	if cur == nil {
		return 0
	} else if cur.leaf() {
		return 1
	}
	return countLeaves(cur.l) + countLeaves(cur.r)
}

// CountLeaves [OrderedTree.CountLeaves]. Recursive.
// Time: O(n)
func (u *BSTree[K]) CountLeaves() uint {
	return countLeaves(u.root)
}

// validIn checks that every key of the subtree rooting at cur lies in (lo, hi).
// A nil bound is unbounded.
func validIn[K Number](cur *node[K], lo, hi *K) bool {
	if cur == nil {
		return true
	}
	if (lo != nil && cur.v <= *lo) || (hi != nil && cur.v >= *hi) {
		return false
	}
	return validIn(cur.l, lo, &cur.v) && validIn(cur.r, &cur.v, hi)
}

// IsValidBST [OrderedTree.IsValidBST]. Recursive.
// Time: O(n)
func (u *BSTree[K]) IsValidBST() bool {
	return validIn(u.root, nil, nil)
}

// balance is the result of checking a subtree: its height if ok, otherwise
// the subtree, or something in it, is unbalanced and height is meaningless.
type balance struct {
	height int
	ok     bool
}

var unbalanced = balance{}

func checkBalance[K Number](cur *node[K]) balance {
	if cur == nil {
		return balance{-1, true}
	}
	l := checkBalance(cur.l)
	if !l.ok {
		return unbalanced
	}
	r := checkBalance(cur.r)
	if !r.ok || l.height-r.height > 1 || r.height-l.height > 1 {
		return unbalanced
	}
	return balance{max(l.height, r.height) + 1, true}
}

// IsBalanced [OrderedTree.IsBalanced]. Recursive.
// A single bottom up pass; the first unbalanced subtree stops the check.
// Time: O(n)
func (u *BSTree[K]) IsBalanced() bool {
	return checkBalance(u.root).ok
}
