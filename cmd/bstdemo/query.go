package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/internal/display"
	"github.com/spf13/cobra"
)

type queryOpts struct {
	keys   []int
	delete []int
	kth    []uint
	lca    []int
	rng    []int
	show   bool
}

func (a *app) queryCmd() *cobra.Command {
	o := &queryOpts{}
	cmd := &cobra.Command{
		Use:   "query --keys 50,30,70 [flags]",
		Short: "Build a tree from keys and run queries against it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(o.lca) != 0 && len(o.lca) != 2 {
				return fmt.Errorf("--lca takes two keys, got %d", len(o.lca))
			}
			if len(o.rng) != 0 && len(o.rng) != 2 {
				return fmt.Errorf("--range takes two keys, got %d", len(o.rng))
			}
			return a.query(cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&o.keys, "keys", nil, "keys to insert, in order")
	f.IntSliceVar(&o.delete, "delete", nil, "keys to delete after inserting")
	f.UintSliceVar(&o.kth, "kth", nil, "ranks to select, 1 is the smallest")
	f.IntSliceVar(&o.lca, "lca", nil, "two keys whose lowest common ancestor to find")
	f.IntSliceVar(&o.rng, "range", nil, "low,high bounds of a range sum")
	f.BoolVar(&o.show, "show", true, "print the tree shape")
	return cmd
}

func (a *app) query(w io.Writer, o *queryOpts) error {
	t := a.newTree(len(o.keys))
	for _, k := range o.keys {
		if !t.Insert(k) {
			a.log.Warn().Int("key", k).Msg("duplicate key ignored")
		}
	}
	for _, k := range o.delete {
		if !t.Delete(k) {
			a.log.Warn().Int("key", k).Msg("key to delete not present")
		}
	}
	a.log.Debug().Uint("size", t.Size()).Int("height", t.Height()).Msg("tree built")

	if o.show {
		fmt.Fprint(w, display.Render[int](t))
		if t.IsEmpty() {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "size=%d height=%d leaves=%d balanced=%v valid=%v\n",
		t.Size(), t.Height(), t.CountLeaves(), t.IsBalanced(), t.IsValidBST())
	fmt.Fprintf(w, "in-order=%s\n", keys(t.InOrder()))
	if lo, err := t.FindMin(); err == nil {
		hi, _ := t.FindMax()
		fmt.Fprintf(w, "min=%d max=%d\n", lo, hi)
	}

	var errs []error
	for _, k := range o.kth {
		if v, err := t.KthSmallest(k); err != nil {
			errs = append(errs, err)
		} else {
			fmt.Fprintf(w, "kth(%d)=%d\n", k, v)
		}
	}
	if len(o.lca) == 2 {
		if v, err := t.LowestCommonAncestor(o.lca[0], o.lca[1]); err != nil {
			errs = append(errs, err)
		} else {
			fmt.Fprintf(w, "lca(%d,%d)=%d\n", o.lca[0], o.lca[1], v)
		}
	}
	if len(o.rng) == 2 {
		fmt.Fprintf(w, "rangeSum(%d,%d)=%d\n", o.rng[0], o.rng[1], t.RangeSum(o.rng[0], o.rng[1]))
	}
	for _, err := range errs {
		var ia *Trees.InvalidArgumentError
		if errors.As(err, &ia) {
			a.log.Error().Str("op", ia.Op).Interface("arg", ia.Arg).Msg(ia.Reason)
		}
	}
	return errors.Join(errs...)
}
