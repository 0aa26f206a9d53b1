package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// InOrder [OrderedTree.InOrder]
// Uses an explicit stack and never writes to the tree.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[K]) InOrder() func() (K, bool) {
	var st []*node[K]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r K, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

// PreOrder [OrderedTree.PreOrder]
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[K]) PreOrder() func() (K, bool) {
	var st []*node[K]
	if u.root != nil {
		st = append(st, u.root)
	}
	return func() (r K, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
		return cur.v, true
	}
}

// PostOrder [OrderedTree.PostOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[K]) PostOrder() func() (K, bool) {
	var st []*node[K]
	var last *node[K] // last node given out
	cur := u.root
	return func() (r K, has bool) {
		for cur != nil || len(st) > 0 {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
			} else if top := st[len(st)-1]; top.r != nil && top.r != last {
				cur = top.r
			} else {
				st = st[:len(st)-1]
				last = top
				return top.v, true
			}
		}
		return
	}
}

// LevelOrder [OrderedTree.LevelOrder]
// Time: f(): O(1) at each call to the returned function. Space: O(width)
func (u *BSTree[K]) LevelOrder() func() (K, bool) {
	q := Queues.MakeArrayQueue[*node[K]](0)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r K, has bool) {
		cur, err := q.Pop()
		if err != nil {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

func walk[K Number](cur *node[K], d uint, s Side, f func(K, uint, Side) bool) bool {
	if cur == nil {
		return true
	}
	return f(cur.v, d, s) && walk(cur.l, d+1, Left, f) && walk(cur.r, d+1, Right, f)
}

// Walk [OrderedTree.Walk]. Recursive.
// Time: O(n)
func (u *BSTree[K]) Walk(f func(v K, depth uint, side Side) bool) {
	walk(u.root, 0, Root, f)
}
