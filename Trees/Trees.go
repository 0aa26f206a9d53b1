package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the key type held by the trees in this package. Keys are
// numeric so that RangeSum can add them up. NaN is not a valid key.
type Number interface {
	constraints.Integer | constraints.Float
}

// Side tells which slot of its parent a node occupies.
type Side byte

const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "root"
	}
}

// OrderedTree is an unbalanced binary search tree of unique keys. For every node,
// all keys in its left subtree are smaller and all keys in its right subtree are
// larger. The shape of the tree is a pure function of the sequence of Insert and
// Delete calls applied to the empty tree; nothing ever rotates.
// Receivers that return an error leave the tree unmodified when the error is non-nil.
// Absence of a key is never an error: Search and Delete report it with a bool.
// Methods implemented recursively are noted, otherwise methods are implemented iteratively.
// Implementations aren't safe for concurrent mutation. Read-only methods may run
// concurrently as long as no mutation is in flight.
type OrderedTree[K Number] interface {
	//Insert v to the tree. Returns false, leaving the tree unchanged, if v is already present.
	Insert(v K) bool
	//Delete v from the tree. Returns false, leaving the tree unchanged, if v isn't present.
	Delete(v K) bool
	//Search reports whether v is in the tree.
	Search(v K) bool
	//SearchIterative is Search without recursion; the two always agree.
	SearchIterative(v K) bool
	//FindMin returns the smallest key, or *EmptyTreeError.
	FindMin() (K, error)
	//FindMax returns the largest key, or *EmptyTreeError.
	FindMax() (K, error)
	//Predecessor returns the greatest key less than v.
	Predecessor(v K) (K, bool)
	//Successor returns the smallest key greater than v.
	Successor(v K) (K, bool)

	//InOrder returns a closure f acting like an iterator over the keys in
	//ascending order. Calling f is like calling "Next()" of iterators: val, valid=f().
	//val is meaningful only if valid is true. valid can't turn true after it first
	//became false. Call InOrder again for a fresh traversal.
	//The tree must not be modified while f is in use.
	InOrder() func() (K, bool)
	//PreOrder is InOrder in node, left, right order. Re-inserting the keys in
	//this order into an empty tree rebuilds the same shape.
	PreOrder() func() (K, bool)
	//PostOrder is InOrder in left, right, node order.
	PostOrder() func() (K, bool)
	//LevelOrder is InOrder in breadth first order, each level left to right.
	LevelOrder() func() (K, bool)
	//Walk visits the nodes in pre-order, passing each key with its depth and the
	//slot it occupies. Walk stops when f returns false.
	Walk(f func(v K, depth uint, side Side) bool)

	//Height is the number of edges on the longest root to leaf path, -1 when empty.
	Height() int
	//Size of the tree, maintained by Insert and Delete.
	Size() uint
	IsEmpty() bool
	//CountNodes recounts the nodes reachable from the root.
	CountNodes() uint
	//CountLeaves counts the nodes with no children.
	CountLeaves() uint
	//IsValidBST checks the ordering of every node against the open interval
	//its ancestors admit, without relying on anything Insert or Delete maintain.
	IsValidBST() bool
	//IsBalanced reports whether the heights of the two subtrees of every node
	//differ by at most one.
	IsBalanced() bool

	//KthSmallest returns the k-th smallest key, 1<=k<=Size(), or *InvalidArgumentError.
	KthSmallest(k uint) (K, error)
	//LowestCommonAncestor of a and b, both of which must be present, or *InvalidArgumentError.
	LowestCommonAncestor(a, b K) (K, error)
	//RangeSum adds up every key in [low, high].
	RangeSum(low, high K) K
	//Clear the tree in O(1).
	Clear()
}

// Seq adapts an iterator returned by the traversal methods of OrderedTree to iter.Seq.
func Seq[K any](next func() (K, bool)) iter.Seq[K] {
	return func(yield func(K) bool) {
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains next into a slice.
func Collect[K any](next func() (K, bool)) (r []K) {
	for v, ok := next(); ok; v, ok = next() {
		r = append(r, v)
	}
	return
}
