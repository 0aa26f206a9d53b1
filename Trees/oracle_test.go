package Trees

import (
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

// TestTree_Oracle runs random inserts and deletes against a red-black tree, a
// B-tree and a hash map holding the same keys and compares every query.
func TestTree_Oracle(t *testing.T) {
	forEach(t, func(t *testing.T, mk func() OrderedTree[int]) {
		tree := mk()
		rb := redblacktree.NewWithIntComparator()
		bt := btree.NewOrderedG[int](8)
		members := hashmap.New[int, struct{}]()

		for round := range 20 {
			for range tAddN / 10 {
				v := rg.Intn(tAddValRange / 2)
				if rg.Intn(4) == 0 {
					want := members.Del(v)
					if got := tree.Delete(v); got != want {
						t.Fatalf("delete of %d is %v, want %v", v, got, want)
					}
					rb.Remove(v)
					bt.Delete(v)
				} else {
					want := members.Insert(v, struct{}{})
					if got := tree.Insert(v); got != want {
						t.Fatalf("insert of %d is %v, want %v", v, got, want)
					}
					rb.Put(v, nil)
					bt.ReplaceOrInsert(v)
				}
			}
			check(t, tree)
			if tree.Size() != uint(rb.Size()) || rb.Size() != bt.Len() || bt.Len() != members.Len() {
				t.Fatalf("round %d: sizes %d, %d, %d, %d disagree", round, tree.Size(), rb.Size(), bt.Len(), members.Len())
			}

			next := tree.InOrder()
			for it := rb.Iterator(); it.Next(); {
				if v, ok := next(); !ok || v != it.Key().(int) {
					t.Fatalf("round %d: in-order gave %d, want %d", round, v, it.Key())
				}
			}
			if rb.Size() > 0 {
				if v, _ := tree.FindMin(); v != rb.Left().Key.(int) {
					t.Errorf("min is %d, want %d", v, rb.Left().Key)
				}
				if v, _ := tree.FindMax(); v != rb.Right().Key.(int) {
					t.Errorf("max is %d, want %d", v, rb.Right().Key)
				}
			}

			for range 20 {
				low := rg.Intn(tAddValRange/2) - 100
				high := low + rg.Intn(tAddValRange/4)
				want := 0
				bt.AscendRange(low, high+1, func(v int) bool {
					want += v
					return true
				})
				if got := tree.RangeSum(low, high); got != want {
					t.Errorf("range sum [%d, %d] is %d, want %d", low, high, got, want)
				}

				v := rg.Intn(tAddValRange / 2)
				if p, ok := tree.Predecessor(v); ok {
					if f, found := rb.Floor(v - 1); !found || f.Key.(int) != p {
						t.Errorf("predecessor of %d is %d", v, p)
					}
				} else if _, found := rb.Floor(v - 1); found {
					t.Errorf("predecessor of %d missing", v)
				}
				if s, ok := tree.Successor(v); ok {
					if c, found := rb.Ceiling(v + 1); !found || c.Key.(int) != s {
						t.Errorf("successor of %d is %d", v, s)
					}
				} else if _, found := rb.Ceiling(v + 1); found {
					t.Errorf("successor of %d missing", v)
				}
			}

			if n := tree.Size(); n > 0 {
				k := uint(rg.Intn(int(n))) + 1
				var want int
				i := uint(0)
				bt.Ascend(func(v int) bool {
					i++
					want = v
					return i < k
				})
				if got, err := tree.KthSmallest(k); err != nil || got != want {
					t.Errorf("%d-th smallest is %d, %v, want %d", k, got, err, want)
				}
			}
		}
	})
}

// lca computes the lowest common ancestor from root paths, without using the ordering.
func lca(tree OrderedTree[int], a, b int) int {
	var path []int
	paths := map[int][]int{}
	tree.Walk(func(v int, d uint, _ Side) bool {
		path = append(path[:d], v)
		if v == a || v == b {
			paths[v] = append([]int(nil), path...)
		}
		return true
	})
	pa, pb := paths[a], paths[b]
	r := pa[0]
	for i := 0; i < len(pa) && i < len(pb) && pa[i] == pb[i]; i++ {
		r = pa[i]
	}
	return r
}

func TestTree_LowestCommonAncestor(t *testing.T) {
	forEach(t, func(t *testing.T, mk func() OrderedTree[int]) {
		tree := mk()
		for range tAddN / 4 {
			tree.Insert(rg.Intn(tAddValRange))
		}
		keys := Collect(tree.InOrder())
		for range 200 {
			a, b := keys[rg.Intn(len(keys))], keys[rg.Intn(len(keys))]
			if got, err := tree.LowestCommonAncestor(a, b); err != nil || got != lca(tree, a, b) {
				t.Errorf("LCA(%d, %d) is %d, %v, want %d", a, b, got, err, lca(tree, a, b))
			}
		}
		if _, err := tree.LowestCommonAncestor(keys[0], tAddValRange+1); err == nil {
			t.Errorf("LCA with an absent key succeeded")
		}
	})
}
