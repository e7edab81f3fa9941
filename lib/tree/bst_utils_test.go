package tree

import (
	"errors"
	randv2 "math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint(t *testing.T) {
	tree := newSevenNodesTree()
	var sb strings.Builder
	require.NoError(t, PrettyPrint(&sb, tree.Root()))

	expected := strings.Join([]string{
		"│       ┌── 70",
		"│   ┌── 60",
		"│   │   └── 50",
		"└── 40",
		"    │   ┌── 30",
		"    └── 20",
		"        └── 10",
	}, "\n") + "\n"
	require.Equal(t, expected, sb.String())
}

func TestPrettyPrint_Skewed(t *testing.T) {
	tree := NewBSTree[int](nil)
	for _, v := range []int{1, 2, 3} {
		tree.Insert(v)
	}
	var sb strings.Builder
	require.NoError(t, PrettyPrint(&sb, tree.Root()))
	expected := "│       ┌── 3\n" +
		"│   ┌── 2\n" +
		"└── 1\n"
	require.Equal(t, expected, sb.String())
}

func TestPrettyPrint_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, PrettyPrint(&sb, NewBSTree[int](nil).Root()))
	require.Empty(t, sb.String())
}

type brokenWriter struct{}

var errBrokenWriter = errors.New("broken writer")

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errBrokenWriter
}

func TestPrettyPrint_WriteError(t *testing.T) {
	err := PrettyPrint[int](brokenWriter{}, newSevenNodesTree().Root())
	require.Error(t, err)
	require.ErrorIs(t, err, errBrokenWriter)
}

func TestOrderViolationValidate(t *testing.T) {
	broken := &bsTree[int]{
		root: &bstNode[int]{
			val:  5,
			left: &bstNode[int]{val: 9},
		},
		count: 2,
	}
	err := OrderViolationValidate[int](broken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "order violation")

	// duplicated values are not strictly ascending
	dup := NewBSTree([]int{1, 1, 2})
	require.Error(t, OrderViolationValidate(dup))

	sizeMismatch := &bsTree[int]{
		root:  &bstNode[int]{val: 5},
		count: 3,
	}
	err = OrderViolationValidate[int](sizeMismatch)
	require.Error(t, err)
	require.Contains(t, err.Error(), "size violation")

	require.NoError(t, OrderViolationValidate(NewBSTree[int](nil)))
}

func TestBalanceViolationValidate(t *testing.T) {
	tree := NewBSTree([]int{10, 20, 30, 40, 50, 60, 70})
	tree.Insert(5)
	require.True(t, tree.IsBalanced())
	tree.Insert(4)
	require.False(t, tree.IsBalanced())
	err := BalanceViolationValidate(tree)
	require.Error(t, err)
	require.Contains(t, err.Error(), "balance violation at 40")
}

func TestBSTree_RandomizedAgainstBTree(t *testing.T) {
	oracle := btree.NewOrderedG[int](8)
	tree := NewBSTree[int](nil)
	r := randv2.New(randv2.NewPCG(2024, 1))

	ascend := func() []int {
		res := make([]int, 0, oracle.Len())
		oracle.Ascend(func(item int) bool {
			res = append(res, item)
			return true
		})
		return res
	}

	for i := 0; i < 4096; i++ {
		v := r.IntN(512)
		switch r.IntN(3) {
		case 0, 1:
			_, found := oracle.ReplaceOrInsert(v)
			require.Equal(t, !found, tree.Insert(v))
		default:
			_, found := oracle.Delete(v)
			require.Equal(t, found, tree.Delete(v))
		}
		require.Equal(t, int64(oracle.Len()), tree.Len())

		if i%64 != 0 {
			continue
		}
		require.NoError(t, OrderViolationValidate(tree))
		require.Equal(t, ascend(), tree.InOrder())
		require.Equal(t, BalanceViolationValidate(tree) == nil, tree.IsBalanced())
		require.Equal(t, nodeHeight(tree.Root()), tree.Height(tree.Root()))

		if minV, ok := oracle.Min(); ok {
			treeMin, _ := tree.Min()
			require.Equal(t, minV, treeMin)
			maxV, _ := oracle.Max()
			treeMax, _ := tree.Max()
			require.Equal(t, maxV, treeMax)
		}

		// all orders visit the same set of values
		for _, vals := range [][]int{tree.LevelOrder(), tree.PreOrder(), tree.PostOrder()} {
			sorted := slices.Clone(vals)
			slices.Sort(sorted)
			require.Equal(t, ascend(), sorted)
		}

		if i%256 == 0 {
			tree.Rebalance()
			require.True(t, tree.IsBalanced())
			require.NoError(t, BalanceViolationValidate(tree))
			require.Equal(t, ascend(), tree.InOrder())
		}
	}
}
