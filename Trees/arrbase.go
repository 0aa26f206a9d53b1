package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Child indexes of a node in an arena tree. Index 0 is the empty slot.
// The zero value is meaningful: a node with no children.
type info[S constraints.Unsigned] struct {
	l, r S
}

type base[S constraints.Unsigned] struct {
	root, free S         //free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs        []info[S] //ifs[0] is the empty slot and is never written. all indexes are based on ifs.
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// link c into the left or right slot of p, or into the root slot when p is 0.
func (u *base[S]) link(p S, left bool, c S) {
	if p == 0 {
		u.root = c
	} else if left {
		u.ifs[p].l = c
	} else {
		u.ifs[p].r = c
	}
}

// minIndex of the non empty subtree rooting at i.
// Time: O(D); Space: O(1)
func (u *base[S]) minIndex(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// maxIndex of the non empty subtree rooting at i.
// Time: O(D); Space: O(1)
func (u *base[S]) maxIndex(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// levels counts the levels of the tree using a FIFO frontier, one level per round.
// Time: O(n); Space: O(width)
func (u *base[S]) levels() (n int) {
	q := Queues.MakeArrayQueue[S](0)
	if u.root != 0 {
		q.Push(u.root)
	}
	for ; !q.Empty(); n++ {
		for w := q.Size(); w > 0; w-- {
			i, _ := q.Pop()
			if c := u.ifs[i]; c.l != 0 {
				q.Push(c.l)
			}
			if c := u.ifs[i]; c.r != 0 {
				q.Push(c.r)
			}
		}
	}
	return
}

// preOrder calls f on every index in pre-order until f returns false.
// st is reused as the stack and returned for further reuse.
func (u *base[S]) preOrder(f func(S) bool, st []S) []S {
	st = st[:0]
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(i) {
			break
		}
		if c := u.ifs[i]; c.r != 0 {
			st = append(st, c.r)
		}
		if c := u.ifs[i]; c.l != 0 {
			st = append(st, c.l)
		}
	}
	return st
}

// postOrder calls f on every index in post-order until f returns false.
// st is reused as the stack and returned for further reuse.
func (u *base[S]) postOrder(f func(S) bool, st []S) []S {
	var last S
	st = st[:0]
	for curI := u.root; curI != 0 || len(st) > 0; {
		if curI != 0 {
			st = append(st, curI)
			curI = u.ifs[curI].l
		} else if top := st[len(st)-1]; u.ifs[top].r != 0 && u.ifs[top].r != last {
			curI = u.ifs[top].r
		} else {
			st = st[:len(st)-1]
			last = top
			if !f(top) {
				break
			}
		}
	}
	return st
}
