package tree

import (
	"github.com/benz9527/xbst/lib/infra"
)

var _ BSTree[int] = (*bsTree[int])(nil)

type bstNode[K infra.OrderedKey] struct {
	left  *bstNode[K]
	right *bstNode[K]
	val   K
}

func (node *bstNode[K]) Val() K {
	return node.val
}

func (node *bstNode[K]) Left() BSTNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bstNode[K]) Right() BSTNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *bstNode[K]) minimum() *bstNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *bstNode[K]) maximum() *bstNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// Recursive, recomputed on every call.
func (node *bstNode[K]) height() int {
	if node == nil {
		return -1
	}
	return max(node.left.height(), node.right.height()) + 1
}

// balancedHeight returns the subtree height and whether every node in
// it has children heights differing by at most one. A single post-order
// pass, instead of recomputing the height at each node.
func (node *bstNode[K]) balancedHeight() (int, bool) {
	if node == nil {
		return -1, true
	}
	lh, ok := node.left.balancedHeight()
	if !ok {
		return 0, false
	}
	rh, ok := node.right.balancedHeight()
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

func isNilNode[K infra.OrderedKey](node BSTNode[K]) bool {
	if node == nil {
		return true
	}
	x, ok := node.(*bstNode[K])
	return ok && x == nil
}

// buildTree expects sorted ascending values without duplicates.
// The middle element (rounded down) becomes the subtree root, so the
// right part is one element shorter on an even length.
func buildTree[K infra.OrderedKey](sorted []K) *bstNode[K] {
	if len(sorted) == 0 {
		return nil
	}
	mid := len(sorted) >> 1
	return &bstNode[K]{
		val:   sorted[mid],
		left:  buildTree(sorted[:mid]),
		right: buildTree(sorted[mid+1:]),
	}
}

type bsTree[K infra.OrderedKey] struct {
	root  *bstNode[K]
	count int64
}

func (tree *bsTree[K]) keyCompare(k1, k2 K) int64 {
	return infra.Compare(k1, k2)
}

func (tree *bsTree[K]) Len() int64 {
	return tree.count
}

func (tree *bsTree[K]) Root() BSTNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bsTree[K]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return tree.root.minimum().val, true
}

func (tree *bsTree[K]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return tree.root.maximum().val, true
}

func (tree *bsTree[K]) Insert(val K) bool {
	var inserted bool
	tree.root, inserted = tree.insert(tree.root, val)
	if inserted {
		tree.count++
	}
	return inserted
}

// insert returns the new subtree root to install at the caller.
func (tree *bsTree[K]) insert(x *bstNode[K], val K) (*bstNode[K], bool) {
	if x == nil {
		return &bstNode[K]{val: val}, true
	}

	var inserted bool
	res := tree.keyCompare(val, x.val)
	if /* less */ res < 0 {
		x.left, inserted = tree.insert(x.left, val)
	} else /* greater */ if res > 0 {
		x.right, inserted = tree.insert(x.right, val)
	}
	// equal, duplicates are ignored
	return x, inserted
}

func (tree *bsTree[K]) Delete(val K) bool {
	var removed bool
	tree.root, removed = tree.remove(tree.root, val)
	if removed {
		tree.count--
	}
	return removed
}

/*
d1: X is a leaf or has only one child, X is replaced by that child.

	  |               |
	  X               C
	   \     ====>   / \
	    C           ..  ..

d2: X has two children. Copy the value of the succ S, the minimum of the
right subtree, into X. Then remove S from the right subtree. S has no
left child, so removing it always ends in d1.

	    |                    |
	    X                    S
	   / \   copy(S, X)     / \
	  L   R  ==========>   L   R
	     /                    /
	    S                   ..
	     \
	      ..
*/
func (tree *bsTree[K]) remove(x *bstNode[K], val K) (*bstNode[K], bool) {
	if x == nil {
		return nil, false
	}

	var removed bool
	res := tree.keyCompare(val, x.val)
	if /* less */ res < 0 {
		x.left, removed = tree.remove(x.left, val)
		return x, removed
	} else /* greater */ if res > 0 {
		x.right, removed = tree.remove(x.right, val)
		return x, removed
	}

	if /* d1 */ x.left == nil {
		replace := x.right
		x.right = nil
		return replace, true
	} else if /* d1 */ x.right == nil {
		replace := x.left
		x.left = nil
		return replace, true
	}

	/* d2 */
	x.val = x.right.minimum().val
	x.right, _ = tree.remove(x.right, x.val)
	return x, true
}

func (tree *bsTree[K]) Find(val K) BSTNode[K] {
	for aux := tree.root; aux != nil; {
		res := tree.keyCompare(val, aux.val)
		if res == 0 {
			return aux
		} else if res > 0 {
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return nil
}

func (tree *bsTree[K]) Height(node BSTNode[K]) int {
	x, ok := node.(*bstNode[K])
	if !ok {
		return -1
	}
	return x.height()
}

func (tree *bsTree[K]) Depth(node BSTNode[K]) int {
	if isNilNode[K](node) {
		return -1
	}
	return tree.DepthOf(node.Val())
}

// DepthOf matches by value, searching root, then the left subtree,
// then the right subtree.
func (tree *bsTree[K]) DepthOf(val K) int {
	return depthOf(tree.root, val, 0)
}

func depthOf[K infra.OrderedKey](x *bstNode[K], val K, depth int) int {
	if x == nil {
		return -1
	}
	if x.val == val {
		return depth
	}
	if d := depthOf(x.left, val, depth+1); d >= 0 {
		return d
	}
	return depthOf(x.right, val, depth+1)
}

func (tree *bsTree[K]) IsBalanced() bool {
	_, ok := tree.root.balancedHeight()
	return ok
}

func (tree *bsTree[K]) Rebalance() bool {
	if tree.IsBalanced() {
		return false
	}
	sorted := tree.InOrder()
	tree.Release()
	tree.root = buildTree(sorted)
	tree.count = int64(len(sorted))
	return true
}

// Release detaches every node, children before parents.
func (tree *bsTree[K]) Release() {
	tree.traverse(postOrder, func(x *bstNode[K]) {
		x.left, x.right = nil, nil
	})
	tree.root = nil
	tree.count = 0
}

// NewBSTree builds a balanced tree from values sorted ascending without
// duplicates. The input is not validated; unsorted or duplicated values
// produce a tree that silently violates the search order.
func NewBSTree[K infra.OrderedKey](sorted []K) BSTree[K] {
	return &bsTree[K]{
		root:  buildTree(sorted),
		count: int64(len(sorted)),
	}
}
