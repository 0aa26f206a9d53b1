package Trees

// KthSmallest [OrderedTree.KthSmallest]
// Walks in order and stops at the k-th key.
// Time: O(D+k)
func (u *BSTree[K]) KthSmallest(k uint) (K, error) {
	if k < 1 || k > u.sz {
		return *new(K), &InvalidArgumentError{"KthSmallest", k, "rank out of range"}
	}
	next := u.InOrder()
	for ; k > 1; k-- {
		next()
	}
	v, _ := next()
	return v, nil
}

// LowestCommonAncestor [OrderedTree.LowestCommonAncestor]
// Descends from the root while a and b are on the same side of the current key.
// Time: O(D); Space: O(1)
func (u *BSTree[K]) LowestCommonAncestor(a, b K) (K, error) {
	if !u.SearchIterative(a) {
		return *new(K), &InvalidArgumentError{"LowestCommonAncestor", a, "key not present"}
	} else if !u.SearchIterative(b) {
		return *new(K), &InvalidArgumentError{"LowestCommonAncestor", b, "key not present"}
	}
	cur := u.root
	for {
		if a < cur.v && b < cur.v {
			cur = cur.l
		} else if a > cur.v && b > cur.v {
			cur = cur.r
		} else {
			return cur.v, nil
		}
	}
}

func rangeSum[K Number](cur *node[K], low, high K) (s K) {
	if cur == nil {
		return
	}
	if low <= cur.v && cur.v <= high {
		s = cur.v
	}
	if cur.v > low {
		s += rangeSum(cur.l, low, high)
	}
	if cur.v < high {
		s += rangeSum(cur.r, low, high)
	}
	return
}

// RangeSum [OrderedTree.RangeSum]. Recursive.
// Subtrees entirely outside [low, high] aren't visited.
// Time: O(D+m) where m is the number of keys in range.
func (u *BSTree[K]) RangeSum(low, high K) K {
	return rangeSum(u.root, low, high)
}
