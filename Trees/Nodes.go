package Trees

// A node in the BSTree. Each node owns its two child slots; nil is an empty slot.
type node[K Number] struct {
	v    K
	l, r *node[K]
}

func (n *node[K]) leaf() bool {
	return n.l == nil && n.r == nil
}

// minNode of the non empty subtree rooting at n.
// Time: O(D); Space: O(1)
func minNode[K Number](n *node[K]) *node[K] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode of the non empty subtree rooting at n.
// Time: O(D); Space: O(1)
func maxNode[K Number](n *node[K]) *node[K] {
	for n.r != nil {
		n = n.r
	}
	return n
}
