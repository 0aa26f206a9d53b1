package Trees

import (
	"slices"
	"testing"
)

func TestBSTree_InsertIterative(t *testing.T) {
	a, b := New[int](), New[int]()
	for range tAddN {
		v := rg.Intn(tAddValRange)
		if a.Insert(v) != b.InsertIterative(v) {
			t.Fatalf("inserts of %d disagree", v)
		}
	}
	if !slices.Equal(Collect(a.PreOrder()), Collect(b.PreOrder())) {
		t.Errorf("recursive and iterative inserts built different shapes")
	}
	if a.Size() != b.Size() {
		t.Errorf("sizes %d and %d differ", a.Size(), b.Size())
	}
	for range tAddN {
		v := rg.Intn(tAddValRange)
		if a.Search(v) != a.SearchIterative(v) {
			t.Errorf("searches of %d disagree", v)
		}
	}
}

func TestBSTree_Build(t *testing.T) {
	tree := Build([]int{10, 20, 30, 40, 50, 60, 70}, true)
	check(t, tree)
	if h := tree.Height(); h != 2 {
		t.Errorf("built tree height is %d, want 2", h)
	}
	if !tree.IsBalanced() {
		t.Errorf("built tree is not balanced")
	}
	if s := Collect(tree.PreOrder()); !slices.Equal(s, []int{40, 20, 10, 30, 60, 50, 70}) {
		t.Errorf("built tree pre-order is %v", s)
	}

	sorted := make([]int, tAddN)
	for i := range sorted {
		sorted[i] = i * 3
	}
	tree = Build(sorted, true)
	check(t, tree)
	if !tree.IsBalanced() {
		t.Errorf("built tree of %d keys is not balanced", len(sorted))
	}
	if h := tree.Height(); h != 11 {
		t.Errorf("built tree of %d keys has height %d, want 11", len(sorted), h)
	}
	if tree = Build[int](nil, true); !tree.IsEmpty() {
		t.Errorf("built tree of nothing isn't empty")
	}
}

func TestBSTree_BuildUnsorted(t *testing.T) {
	defer func() {
		e, ok := recover().(InvalidSliceError[int])
		if !ok {
			t.Fatalf("Build didn't panic with InvalidSliceError")
		}
		if e.Index != 2 || e.Prev != 30 || e.Next != 30 {
			t.Errorf("panic value is %+v", e)
		}
	}()
	Build([]int{10, 30, 30, 40}, true)
}

func TestBSTree_ZeroValue(t *testing.T) {
	var tree BSTree[int8]
	for _, v := range []int8{-128, 127, 0} {
		tree.Insert(v)
	}
	if tree.Size() != 3 || !tree.IsValidBST() {
		t.Errorf("zero value tree is broken")
	}
	if s := tree.RangeSum(-128, 0); s != -128 {
		t.Errorf("range sum is %d, want -128", s)
	}
}

func TestBSTree_Corrupt(t *testing.T) {
	tree := Build([]int{1, 2, 3, 4, 5}, true)
	// 3 is the root and 2 the right child of 1. A 4 in place of 2 is fine next to
	// its parent but sits on the wrong side of the root.
	tree.root.l.r = &node[int]{v: 4}
	if tree.IsValidBST() {
		t.Errorf("corrupt tree passed validation")
	}
}

func TestBSTree_DeepSkew(t *testing.T) {
	const n = 1 << 16
	tree := New[int]()
	for i := range n {
		tree.InsertIterative(n - i)
	}
	if h := tree.Height(); h != n-1 {
		t.Errorf("skewed tree height is %d, want %d", h, n-1)
	}
	if tree.IsBalanced() || !tree.IsValidBST() || tree.CountNodes() != n {
		t.Errorf("skewed tree introspection is wrong")
	}
	if v, _ := tree.KthSmallest(n); v != n {
		t.Errorf("%d-th smallest is %d", n, v)
	}
}
