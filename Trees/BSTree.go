package Trees

// BSTree is an unbalanced binary search tree with no repeated keys. Nodes are
// heap allocated and singly own their children; there are no parent pointers.
// Its height D is a direct function of insertion order: ascending or descending
// input degrades it into a chain with D=n-1, median first input gives D=O(log n).
// Recursive methods use stack proportional to D.
// The zero value is an empty tree ready to use.
type BSTree[K Number] struct {
	root *node[K]
	sz   uint
}

var _ OrderedTree[int] = (*BSTree[int])(nil)

// New returns an empty BSTree.
func New[K Number]() *BSTree[K] {
	return new(BSTree[K])
}

// Build a BSTree from the given sorted slice by inserting the median first and
// then recursing into both halves, which yields a height balanced tree.
// The slice must be sorted in ascending order and mustn't contain duplicates.
// If safe==true, this function checks that and panics with InvalidSliceError
// if it isn't; otherwise duplicates are dropped and an unsorted slice
// produces a valid but arbitrarily shaped tree.
// Time: O(n log n)
func Build[K Number](sorted []K, safe bool) *BSTree[K] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1] >= sorted[i] {
				panic(InvalidSliceError[K]{i, sorted[i-1], sorted[i]})
			}
		}
	}
	u := New[K]()
	var build func([]K)
	build = func(s []K) {
		if len(s) > 0 {
			mid := (len(s) - 1) >> 1
			u.Insert(s[mid])
			build(s[:mid])
			build(s[mid+1:])
		}
	}
	build(sorted)
	return u
}

// Size [OrderedTree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[K]) Size() uint {
	return u.sz
}

// IsEmpty [OrderedTree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *BSTree[K]) IsEmpty() bool {
	return u.root == nil
}

// Clear [OrderedTree.Clear]. The dropped nodes are left to the garbage collector.
// Time: O(1); Space: O(1)
func (u *BSTree[K]) Clear() {
	u.root, u.sz = nil, 0
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false.
func (u *BSTree[K]) insert(curPtr **node[K], v K) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[K]{v: v}
		return true
	} else if v < cur.v {
		return u.insert(&cur.l, v)
	} else if v > cur.v {
		return u.insert(&cur.r, v)
	}
	return false
}

// Insert [OrderedTree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BSTree[K]) Insert(v K) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// InsertIterative is Insert without recursion. Both produce the same tree for
// the same sequence of keys.
// Time: O(D); Space: O(1)
func (u *BSTree[K]) InsertIterative(v K) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v > cur.v {
			curPtr = &cur.r
		} else {
			return false
		}
	}
	*curPtr = &node[K]{v: v}
	u.sz++
	return true
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if v doesn't exist in the subtree.
// A node with two children takes the key of its in-order successor, which is
// then removed from the right subtree; the successor has no left child so that
// second removal never has two children.
// Time: O(D)
func (u *BSTree[K]) remove(curPtr **node[K], v K) bool {
	cur := *curPtr
	if cur == nil {
		return false
	} else if v < cur.v {
		return u.remove(&cur.l, v)
	} else if v > cur.v {
		return u.remove(&cur.r, v)
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		cur.v = minNode(cur.r).v
		u.remove(&cur.r, cur.v)
	}
	return true
}

// Delete [OrderedTree.Delete]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BSTree[K]) Delete(v K) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

func search[K Number](cur *node[K], v K) bool {
	if cur == nil {
		return false
	} else if v < cur.v {
		return search(cur.l, v)
	} else if v > cur.v {
		return search(cur.r, v)
	}
	return true
}

// Search [OrderedTree.Search]. Recursive.
// Time: O(D)
func (u *BSTree[K]) Search(v K) bool {
	return search(u.root, v)
}

// SearchIterative [OrderedTree.SearchIterative]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) SearchIterative(v K) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// FindMin [OrderedTree.FindMin]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) FindMin() (K, error) {
	if u.root == nil {
		return *new(K), &EmptyTreeError{"FindMin"}
	}
	return minNode(u.root).v, nil
}

// FindMax [OrderedTree.FindMax]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) FindMax() (K, error) {
	if u.root == nil {
		return *new(K), &EmptyTreeError{"FindMax"}
	}
	return maxNode(u.root).v, nil
}

// Predecessor [OrderedTree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) Predecessor(v K) (K, bool) {
	var p *node[K]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.v, true
}

// Successor [OrderedTree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[K]) Successor(v K) (K, bool) {
	var p *node[K]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.v, true
}
