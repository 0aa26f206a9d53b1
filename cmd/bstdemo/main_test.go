package main

import (
	"bytes"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuery(t *testing.T) {
	for _, arena := range []string{"--arena=false", "--arena=true"} {
		out, err := run(t, "query", arena, "--keys", "50,30,70,20,40,60,80",
			"--kth", "3", "--lca", "20,40", "--range", "30,70", "--show=false")
		require.NoError(t, err)
		require.Contains(t, out, "size=7 height=2 leaves=4 balanced=true valid=true")
		require.Contains(t, out, "in-order=[20 30 40 50 60 70 80]")
		require.Contains(t, out, "min=20 max=80")
		require.Contains(t, out, "kth(3)=40")
		require.Contains(t, out, "lca(20,40)=30")
		require.Contains(t, out, "rangeSum(30,70)=250")
	}
}

func TestQuery_Delete(t *testing.T) {
	out, err := run(t, "query", "--keys", "50,30,70,20,40,60,80", "--delete", "50,99")
	require.NoError(t, err)
	require.Contains(t, out, "60\n├── [L]  30")
	require.Contains(t, out, "in-order=[20 30 40 60 70 80]")
}

func TestQuery_Errors(t *testing.T) {
	_, err := run(t, "query", "--keys", "1,2,3", "--kth", "4")
	var ia *Trees.InvalidArgumentError
	require.ErrorAs(t, err, &ia)
	require.Equal(t, "KthSmallest", ia.Op)

	_, err = run(t, "query", "--keys", "1,2,3", "--lca", "1,9")
	require.ErrorAs(t, err, &ia)
	require.Equal(t, 9, ia.Arg)

	_, err = run(t, "query", "--lca", "1")
	require.ErrorContains(t, err, "--lca takes two keys")

	_, err = run(t, "--log-level", "loud", "query")
	require.Error(t, err)
}

func TestQuery_Empty(t *testing.T) {
	out, err := run(t, "query")
	require.NoError(t, err)
	require.Contains(t, out, "(empty tree)")
	require.Contains(t, out, "size=0 height=-1")
	require.NotContains(t, out, "min=")
}

func TestDemo(t *testing.T) {
	for _, arena := range []string{"--arena=false", "--arena=true"} {
		out, err := run(t, "demo", arena)
		require.NoError(t, err)
		require.Contains(t, out, "in-order:    [20 30 40 50 60 70 80]")
		require.Contains(t, out, "level-order: [50 30 70 20 40 60 80]")
		require.Contains(t, out, "search 20 (iterative): true")
		require.Contains(t, out, "LCA(20, 80): 50")
		require.Contains(t, out, "range sum [30, 70]: 250")
		require.Contains(t, out, "delete 50 (two children): true")
		require.Contains(t, out, "in order: height 6, balanced false")
		require.Contains(t, out, "median first: height 2, balanced true")
		require.Contains(t, out, "FindMin: tree is empty")
		require.Contains(t, out, "size: 2\n")
	}
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--n", "2000", "--skew-limit", "300")
	require.NoError(t, err)
	require.Contains(t, out, "ascending")
	require.Contains(t, out, "median-first")
	require.Contains(t, out, "random")
	// median first over 2,000 keys gives the minimum height.
	require.Regexp(t, `median-first\s+arena\s+2,000\s+10\s+true`, out)
	require.Regexp(t, `ascending\s+pointer\s+300\s+299\s+false`, out)

	_, err = run(t, "bench", "--n", "0")
	require.Error(t, err)
}

func TestMedianFirst(t *testing.T) {
	require.Equal(t, []int{40, 20, 10, 30, 60, 50, 70}, medianFirst([]int{10, 20, 30, 40, 50, 60, 70}))
	require.Empty(t, medianFirst(nil))
}

func TestBuildBalanced(t *testing.T) {
	sorted := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	for _, arena := range []bool{false, true} {
		a := &app{arena: arena}
		bt := a.buildBalanced(sorted)
		want := fill(a.newTree(len(sorted)), medianFirst(sorted))
		require.Equal(t, Trees.Collect(want.PreOrder()), Trees.Collect(bt.PreOrder()), "arena=%v", arena)
		require.Equal(t, 3, bt.Height())
		require.True(t, bt.IsBalanced())
		_, isPtr := bt.(*Trees.BSTree[int])
		require.Equal(t, !arena, isPtr)
	}
}
