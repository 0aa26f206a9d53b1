package display

import (
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tree := Trees.New[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(v)
	}
	want := `50
├── [L]  30
│   ├── [L]  20
│   └── [R]  40
└── [R]  70
    ├── [L]  60
    └── [R]  80
`
	require.Equal(t, want, Render[int](tree))

	arr := Trees.NewArr[int, uint16](8)
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		arr.Insert(v)
	}
	require.Equal(t, want, Render[int](arr))
}

func TestRender_LoneChildren(t *testing.T) {
	tree := Trees.New[int]()
	for _, v := range []int{10, 20, 15} {
		tree.Insert(v)
	}
	want := `10
└── [R]  20
    └── [L]  15
`
	require.Equal(t, want, Render[int](tree))
}

func TestRender_Small(t *testing.T) {
	tree := Trees.New[float64]()
	require.Equal(t, Empty, Render[float64](tree))
	tree.Insert(4.5)
	require.Equal(t, "4.5\n", Render[float64](tree))
	tree.Clear()
	require.Equal(t, Empty, Render[float64](tree))
}
