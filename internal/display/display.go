// Package display renders the shape of an ordered tree as an ASCII tree.
package display

import (
	"fmt"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/xlab/treeprint"
)

// Walker is the part of Trees.OrderedTree the renderer needs.
type Walker[K Trees.Number] interface {
	Walk(f func(v K, depth uint, side Trees.Side) bool)
}

// Empty is what Render returns for a tree with no keys.
const Empty = "(empty tree)"

// Render the tree. Each child is tagged with the slot it occupies,
// e.g. "[L]  30", so a lone child still shows which side it hangs on.
func Render[K Trees.Number](t Walker[K]) string {
	var root treeprint.Tree
	var path []treeprint.Tree // path[d] is the branch of the last node seen at depth d
	t.Walk(func(v K, d uint, s Trees.Side) bool {
		if s == Trees.Root {
			root = treeprint.NewWithRoot(fmt.Sprint(v))
			path = append(path[:0], root)
			return true
		}
		b := path[d-1].AddMetaBranch(s.String(), v)
		path = append(path[:d], b)
		return true
	})
	if root == nil {
		return Empty
	}
	return root.String()
}
