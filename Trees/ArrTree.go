package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// ArrBSTree is the same unbalanced binary search tree as BSTree, laid out in a
// flat arena: nodes are addressed by index into parallel arrays and freed
// indexes are reused before the arrays grow. No method recurses, so a
// skewed tree of any height costs no stack.
// S is the type of the indexes; it must be wide enough to address Size()+1
// nodes, otherwise Insert panics.
type ArrBSTree[K Number, S constraints.Unsigned] struct {
	base[S]
	vs []K //vs[i-1] is the key of node i.
	sz S
}

var _ OrderedTree[int] = (*ArrBSTree[int, uint32])(nil)

// NewArr returns an empty ArrBSTree with room for hint keys before the arena grows.
func NewArr[K Number, S constraints.Unsigned](hint S) *ArrBSTree[K, S] {
	return &ArrBSTree[K, S]{base: base[S]{ifs: make([]info[S], 1, int(hint)+1)}, vs: make([]K, 0, hint)}
}

// alloc a leaf holding v. Free indexes are used first.
func (u *ArrBSTree[K, S]) alloc(v K) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i], u.vs[i-1] = info[S]{}, v
		return i
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) {
		panic("Trees: arena index type is too narrow for the tree")
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return i
}

// Size [OrderedTree.Size]
// Time: O(1); Space: O(1)
func (u *ArrBSTree[K, S]) Size() uint {
	return uint(u.sz)
}

// IsEmpty [OrderedTree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *ArrBSTree[K, S]) IsEmpty() bool {
	return u.root == 0
}

// Clear [OrderedTree.Clear]. The arena keeps its capacity for reuse.
// Time: O(1); Space: O(1)
func (u *ArrBSTree[K, S]) Clear() {
	u.root, u.free, u.sz = 0, 0, 0
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
}

// Insert [OrderedTree.Insert]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) Insert(v K) bool {
	var p S
	left := false
	for curI := u.root; curI != 0; {
		p = curI
		if cv := u.vs[curI-1]; v < cv {
			curI, left = u.ifs[curI].l, true
		} else if v > cv {
			curI, left = u.ifs[curI].r, false
		} else {
			return false
		}
	}
	u.link(p, left, u.alloc(v)) //alloc may move ifs, so link by index.
	u.sz++
	return true
}

// Delete [OrderedTree.Delete]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) Delete(v K) bool {
	curI := &u.root
	for *curI != 0 {
		if cv := u.vs[*curI-1]; v < cv {
			curI = &u.ifs[*curI].l
		} else if v > cv {
			curI = &u.ifs[*curI].r
		} else {
			break
		}
	}
	i := *curI
	if i == 0 {
		return false
	}
	if cur := u.ifs[i]; cur.l == 0 {
		*curI = cur.r
		u.addFree(i)
	} else if cur.r == 0 {
		*curI = cur.l
		u.addFree(i)
	} else {
		si := &u.ifs[i].r
		for u.ifs[*si].l != 0 {
			si = &u.ifs[*si].l
		}
		s := *si
		u.vs[i-1] = u.vs[s-1]
		*si = u.ifs[s].r
		u.addFree(s)
	}
	u.sz--
	return true
}

// Search [OrderedTree.Search]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) Search(v K) bool {
	for curI := u.root; curI != 0; {
		if cv := u.vs[curI-1]; v < cv {
			curI = u.ifs[curI].l
		} else if v > cv {
			curI = u.ifs[curI].r
		} else {
			return true
		}
	}
	return false
}

// SearchIterative [OrderedTree.SearchIterative]. Search is already iterative.
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) SearchIterative(v K) bool {
	return u.Search(v)
}

// FindMin [OrderedTree.FindMin]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) FindMin() (K, error) {
	if u.root == 0 {
		return *new(K), &EmptyTreeError{"FindMin"}
	}
	return u.vs[u.minIndex(u.root)-1], nil
}

// FindMax [OrderedTree.FindMax]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) FindMax() (K, error) {
	if u.root == 0 {
		return *new(K), &EmptyTreeError{"FindMax"}
	}
	return u.vs[u.maxIndex(u.root)-1], nil
}

// Predecessor [OrderedTree.Predecessor]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) Predecessor(v K) (p K, ok bool) {
	for curI := u.root; curI != 0; {
		if cv := u.vs[curI-1]; v <= cv {
			curI = u.ifs[curI].l
		} else {
			p, ok = cv, true
			curI = u.ifs[curI].r
		}
	}
	return
}

// Successor [OrderedTree.Successor]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) Successor(v K) (p K, ok bool) {
	for curI := u.root; curI != 0; {
		if cv := u.vs[curI-1]; v < cv {
			p, ok = cv, true
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return
}

// InOrder [OrderedTree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *ArrBSTree[K, S]) InOrder() func() (K, bool) {
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	return func() (r K, has bool) {
		if len(st) == 0 {
			return
		}
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		for next := u.ifs[curI].r; next != 0; next = u.ifs[next].l {
			st = append(st, next)
		}
		return u.vs[curI-1], true
	}
}

// PreOrder [OrderedTree.PreOrder]
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *ArrBSTree[K, S]) PreOrder() func() (K, bool) {
	var st []S
	if u.root != 0 {
		st = append(st, u.root)
	}
	return func() (r K, has bool) {
		if len(st) == 0 {
			return
		}
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if cur := u.ifs[curI]; cur.r != 0 {
			st = append(st, cur.r)
		}
		if cur := u.ifs[curI]; cur.l != 0 {
			st = append(st, cur.l)
		}
		return u.vs[curI-1], true
	}
}

// PostOrder [OrderedTree.PostOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *ArrBSTree[K, S]) PostOrder() func() (K, bool) {
	var st []S
	var last S
	curI := u.root
	return func() (r K, has bool) {
		for curI != 0 || len(st) > 0 {
			if curI != 0 {
				st = append(st, curI)
				curI = u.ifs[curI].l
			} else if top := st[len(st)-1]; u.ifs[top].r != 0 && u.ifs[top].r != last {
				curI = u.ifs[top].r
			} else {
				st = st[:len(st)-1]
				last = top
				return u.vs[top-1], true
			}
		}
		return
	}
}

// LevelOrder [OrderedTree.LevelOrder]
// Time: f(): O(1) at each call to the returned function. Space: O(width)
func (u *ArrBSTree[K, S]) LevelOrder() func() (K, bool) {
	q := Queues.MakeArrayQueue[S](0)
	if u.root != 0 {
		q.Push(u.root)
	}
	return func() (r K, has bool) {
		curI, err := q.Pop()
		if err != nil {
			return
		}
		if cur := u.ifs[curI]; cur.l != 0 {
			q.Push(cur.l)
		}
		if cur := u.ifs[curI]; cur.r != 0 {
			q.Push(cur.r)
		}
		return u.vs[curI-1], true
	}
}

// Walk [OrderedTree.Walk]
// Time: O(n); Space: O(D)
func (u *ArrBSTree[K, S]) Walk(f func(v K, depth uint, side Side) bool) {
	type frame struct {
		i S
		d uint
		s Side
	}
	var st []frame
	if u.root != 0 {
		st = append(st, frame{u.root, 0, Root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.vs[top.i-1], top.d, top.s) {
			return
		}
		if cur := u.ifs[top.i]; cur.r != 0 {
			st = append(st, frame{cur.r, top.d + 1, Right})
		}
		if cur := u.ifs[top.i]; cur.l != 0 {
			st = append(st, frame{cur.l, top.d + 1, Left})
		}
	}
}

// Height [OrderedTree.Height]
// Time: O(n); Space: O(width)
func (u *ArrBSTree[K, S]) Height() int {
	return u.levels() - 1
}

// CountNodes [OrderedTree.CountNodes]
// Time: O(n); Space: O(D)
func (u *ArrBSTree[K, S]) CountNodes() (n uint) {
	u.preOrder(func(S) bool {
		n++
		return true
	}, nil)
	return
}

// CountLeaves [OrderedTree.CountLeaves]
// Time: O(n); Space: O(D)
func (u *ArrBSTree[K, S]) CountLeaves() (n uint) {
	u.preOrder(func(i S) bool {
		if u.ifs[i] == (info[S]{}) {
			n++
		}
		return true
	}, nil)
	return
}

// IsValidBST [OrderedTree.IsValidBST]
// Each stack frame carries the open interval its subtree must fall in.
// Time: O(n); Space: O(D)
func (u *ArrBSTree[K, S]) IsValidBST() bool {
	type frame struct {
		i            S
		lo, hi       K
		hasLo, hasHi bool
	}
	var st []frame
	if u.root != 0 {
		st = append(st, frame{i: u.root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		v := u.vs[top.i-1]
		if (top.hasLo && v <= top.lo) || (top.hasHi && v >= top.hi) {
			return false
		}
		if cur := u.ifs[top.i]; cur.l != 0 {
			st = append(st, frame{cur.l, top.lo, v, top.hasLo, true})
		}
		if cur := u.ifs[top.i]; cur.r != 0 {
			st = append(st, frame{cur.r, v, top.hi, true, top.hasHi})
		}
	}
	return true
}

// IsBalanced [OrderedTree.IsBalanced]
// Heights are filled in bottom up during a post-order walk that stops at the
// first unbalanced node.
// Time: O(n); Space: O(n)
func (u *ArrBSTree[K, S]) IsBalanced() bool {
	hs := make([]int, len(u.ifs))
	hs[0] = -1
	ok := true
	u.postOrder(func(i S) bool {
		l, r := hs[u.ifs[i].l], hs[u.ifs[i].r]
		if ok = l-r <= 1 && r-l <= 1; ok {
			hs[i] = max(l, r) + 1
		}
		return ok
	}, nil)
	return ok
}

// KthSmallest [OrderedTree.KthSmallest]
// Time: O(D+k)
func (u *ArrBSTree[K, S]) KthSmallest(k uint) (K, error) {
	if k < 1 || k > uint(u.sz) {
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
// Time: O(D); Space: O(1)
func (u *ArrBSTree[K, S]) LowestCommonAncestor(a, b K) (K, error) {
	if !u.Search(a) {
		return *new(K), &InvalidArgumentError{"LowestCommonAncestor", a, "key not present"}
	} else if !u.Search(b) {
		return *new(K), &InvalidArgumentError{"LowestCommonAncestor", b, "key not present"}
	}
	curI := u.root
	for {
		if cv := u.vs[curI-1]; a < cv && b < cv {
			curI = u.ifs[curI].l
		} else if a > cv && b > cv {
			curI = u.ifs[curI].r
		} else {
			return cv, nil
		}
	}
}

// RangeSum [OrderedTree.RangeSum]
// Time: O(D+m) where m is the number of keys in range. Space: O(D)
func (u *ArrBSTree[K, S]) RangeSum(low, high K) (s K) {
	var st []S
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		cv := u.vs[curI-1]
		if low <= cv && cv <= high {
			s += cv
		}
		if cur := u.ifs[curI]; cv > low && cur.l != 0 {
			st = append(st, cur.l)
		}
		if cur := u.ifs[curI]; cv < high && cur.r != 0 {
			st = append(st, cur.r)
		}
	}
	return
}
