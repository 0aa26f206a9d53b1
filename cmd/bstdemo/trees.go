package main

import (
	"github.com/g-m-twostay/go-bst/Trees"
)

type tree = Trees.OrderedTree[int]

// newTree returns the tree implementation selected by --arena.
func (a *app) newTree(hint int) tree {
	if a.arena {
		return Trees.NewArr[int, uint32](uint32(hint))
	}
	return Trees.New[int]()
}

func fill(t tree, keys []int) tree {
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// buildBalanced builds a height balanced tree from sorted, which must be
// strictly ascending. The arena tree has no bulk builder, so it is filled in
// median first order instead.
func (a *app) buildBalanced(sorted []int) tree {
	if a.arena {
		return fill(a.newTree(len(sorted)), medianFirst(sorted))
	}
	return Trees.Build(sorted, true)
}

// medianFirst orders sorted so that inserting it into an empty tree gives a
// height balanced tree.
func medianFirst(sorted []int) []int {
	out := make([]int, 0, len(sorted))
	var rec func([]int)
	rec = func(s []int) {
		if len(s) > 0 {
			mid := (len(s) - 1) / 2
			out = append(out, s[mid])
			rec(s[:mid])
			rec(s[mid+1:])
		}
	}
	rec(sorted)
	return out
}
