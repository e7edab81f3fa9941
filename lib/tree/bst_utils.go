package tree

import (
	"fmt"
	"io"

	"github.com/benz9527/xbst/lib/infra"
)

// bstree rule validation utilities.
// They only depend on the read-only BSTNode view, so they also check
// trees that were not produced by this package.

func nodeHeight[K infra.OrderedKey](node BSTNode[K]) int {
	if isNilNode[K](node) {
		return -1
	}
	return max(nodeHeight[K](node.Left()), nodeHeight[K](node.Right())) + 1
}

// Inorder traversal to validate the strictly ascending order and the size.
func OrderViolationValidate[K infra.OrderedKey](tree BSTree[K]) error {
	var (
		aux   = tree.Root()
		prev  K
		count int64
		stack = make([]BSTNode[K], 0, 32)
	)
	defer func() {
		clear(stack)
	}()

	for ; !isNilNode[K](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if count > 0 && infra.Compare(prev, aux.Val()) >= 0 {
			return infra.NewErrorStack(fmt.Sprintf("bstree order violation at %v after %v", aux.Val(), prev))
		}
		prev = aux.Val()
		count++

		stack = stack[:size-1]
		for aux = aux.Right(); !isNilNode[K](aux); aux = aux.Left() {
			stack = append(stack, aux)
		}
	}

	if count != tree.Len() {
		return infra.NewErrorStack(fmt.Sprintf("bstree size violation, %d nodes but length %d", count, tree.Len()))
	}
	return nil
}

// BalanceViolationValidate recomputes both children heights at every node.
// It is O(n^2) in the worst case and meant as a reference check.
func BalanceViolationValidate[K infra.OrderedKey](tree BSTree[K]) error {
	var walk func(node BSTNode[K]) error
	walk = func(node BSTNode[K]) error {
		if isNilNode[K](node) {
			return nil
		}
		lh, rh := nodeHeight[K](node.Left()), nodeHeight[K](node.Right())
		if lh-rh > 1 || rh-lh > 1 {
			return infra.NewErrorStack(fmt.Sprintf("bstree balance violation at %v, left height %d, right height %d", node.Val(), lh, rh))
		}
		if err := walk(node.Left()); err != nil {
			return err
		}
		return walk(node.Right())
	}
	return walk(tree.Root())
}

const (
	branchPrefix = "│   "
	emptyPrefix  = "    "
	leftLink     = "└── "
	rightLink    = "┌── "
)

/*
PrettyPrint renders the tree sideways, right subtree on top.

	│       ┌── 70
	│   ┌── 60
	│   │   └── 50
	└── 40
	    │   ┌── 30
	    └── 20
	        └── 10
*/
func PrettyPrint[K infra.OrderedKey](w io.Writer, root BSTNode[K]) error {
	return prettyPrint[K](w, root, "", Root)
}

func prettyPrint[K infra.OrderedKey](w io.Writer, node BSTNode[K], prefix string, dir BSTDirection) error {
	if isNilNode[K](node) {
		return nil
	}

	isLeft := dir != Right
	if r := node.Right(); !isNilNode[K](r) {
		next := prefix + emptyPrefix
		if isLeft {
			next = prefix + branchPrefix
		}
		if err := prettyPrint[K](w, r, next, Right); err != nil {
			return err
		}
	}

	link := rightLink
	if isLeft {
		link = leftLink
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, link, node.Val()); err != nil {
		return infra.WrapErrorStackWithMessage(err, "bstree pretty print")
	}

	if l := node.Left(); !isNilNode[K](l) {
		next := prefix + branchPrefix
		if isLeft {
			next = prefix + emptyPrefix
		}
		return prettyPrint[K](w, l, next, Left)
	}
	return nil
}
