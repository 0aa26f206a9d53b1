package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/internal/display"
	"github.com/spf13/cobra"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every tree operation on fixed inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log.Info().Bool("arena", a.arena).Msg("starting demo")
			if err := a.demo(cmd.OutOrStdout()); err != nil {
				return err
			}
			a.log.Info().Msg("demo completed")
			return nil
		},
	}
}

func section(w io.Writer, n int, title string) {
	fmt.Fprintf(w, "\n%d. %s\n%s\n", n, title, strings.Repeat("-", 50))
}

func keys(next func() (int, bool)) string {
	return fmt.Sprint(Trees.Collect(next))
}

func (a *app) demo(w io.Writer) error {
	bst := fill(a.newTree(8), []int{50, 30, 70, 20, 40, 60, 80})

	section(w, 1, "INSERTION")
	fmt.Fprint(w, display.Render[int](bst))
	fmt.Fprintf(w, "size: %d\n", bst.Size())

	section(w, 2, "TRAVERSALS")
	fmt.Fprintf(w, "in-order:    %s\n", keys(bst.InOrder()))
	fmt.Fprintf(w, "pre-order:   %s\n", keys(bst.PreOrder()))
	fmt.Fprintf(w, "post-order:  %s\n", keys(bst.PostOrder()))
	fmt.Fprintf(w, "level-order: %s\n", keys(bst.LevelOrder()))

	section(w, 3, "SEARCH")
	fmt.Fprintf(w, "search 40: %v\nsearch 100: %v\n", bst.Search(40), bst.Search(100))
	fmt.Fprintf(w, "search 20 (iterative): %v\n", bst.SearchIterative(20))

	section(w, 4, "MIN/MAX")
	lo, err := bst.FindMin()
	if err != nil {
		return err
	}
	hi, err := bst.FindMax()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "min: %d\nmax: %d\n", lo, hi)

	section(w, 5, "PROPERTIES")
	fmt.Fprintf(w, "height: %d\nnodes: %d\nleaves: %d\nvalid: %v\nbalanced: %v\n",
		bst.Height(), bst.CountNodes(), bst.CountLeaves(), bst.IsValidBST(), bst.IsBalanced())

	section(w, 6, "QUERIES")
	for _, k := range []uint{3, 5} {
		v, err := bst.KthSmallest(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "k=%d smallest: %d\n", k, v)
	}
	for _, p := range [][2]int{{20, 40}, {20, 80}} {
		v, err := bst.LowestCommonAncestor(p[0], p[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "LCA(%d, %d): %d\n", p[0], p[1], v)
	}
	fmt.Fprintf(w, "range sum [30, 70]: %d\n", bst.RangeSum(30, 70))

	section(w, 7, "DELETION")
	for _, d := range []struct {
		k    int
		kind string
	}{{20, "leaf"}, {30, "one child"}, {50, "two children"}} {
		fmt.Fprintf(w, "delete %d (%s): %v\n", d.k, d.kind, bst.Delete(d.k))
		fmt.Fprint(w, display.Render[int](bst))
		fmt.Fprintf(w, "in-order: %s\n", keys(bst.InOrder()))
		a.log.Debug().Int("key", d.k).Uint("size", bst.Size()).Msg("deleted")
	}

	section(w, 8, "BALANCED VS SKEWED")
	sorted := []int{10, 20, 30, 40, 50, 60, 70}
	for _, c := range []struct {
		name string
		keys []int
	}{{"balanced", []int{50, 25, 75, 12, 37, 62, 87}}, {"skewed", sorted}} {
		t := fill(a.newTree(len(c.keys)), c.keys)
		fmt.Fprintf(w, "%s:\n%s", c.name, display.Render[int](t))
		fmt.Fprintf(w, "height: %d, balanced: %v\n", t.Height(), t.IsBalanced())
	}

	section(w, 9, "EDGE CASES")
	empty := a.newTree(0)
	fmt.Fprintf(w, "empty: %v, height: %d\n%s\n", empty.IsEmpty(), empty.Height(), display.Render[int](empty))
	if _, err := empty.FindMin(); err != nil {
		fmt.Fprintf(w, "min of empty tree: %v\n", err)
	}
	single := fill(a.newTree(1), []int{42})
	fmt.Fprintf(w, "single: height %d, balanced %v, in-order %s\n", single.Height(), single.IsBalanced(), keys(single.InOrder()))

	section(w, 10, "DUPLICATES")
	dup := a.newTree(2)
	for _, k := range []int{50, 30, 50} {
		fmt.Fprintf(w, "insert %d: %v\n", k, dup.Insert(k))
	}
	fmt.Fprintf(w, "size: %d\n", dup.Size())

	section(w, 11, "SORTED INPUT")
	skewed := fill(a.newTree(len(sorted)), sorted)
	fmt.Fprintf(w, "in order: height %d, balanced %v\n", skewed.Height(), skewed.IsBalanced())
	better := a.buildBalanced(sorted)
	fmt.Fprintf(w, "median first:\n%s", display.Render[int](better))
	fmt.Fprintf(w, "median first: height %d, balanced %v\n", better.Height(), better.IsBalanced())
	return nil
}
