package tree

import "github.com/benz9527/xbst/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=BSTDirection
type BSTDirection int8

const (
	Left BSTDirection = -1 + iota
	Root
	Right
)

// BSTNode is a read-only view of a tree node.
// Left and Right return nil (not a typed nil) for an absent child.
type BSTNode[K infra.OrderedKey] interface {
	Val() K
	Left() BSTNode[K]
	Right() BSTNode[K]
}

// BSTree is an unbalanced binary search tree without duplicates.
// Mutations never rebalance the tree implicitly. Balance is only
// restored by an explicit Rebalance call.
//
// It is not thread safe. Callers have to guard a shared tree by
// a single exclusive lock around every call.
type BSTree[K infra.OrderedKey] interface {
	Len() int64
	Root() BSTNode[K]
	Min() (K, bool)
	Max() (K, bool)

	// Insert adds val as a new leaf. Inserting an existing value is a no-op
	// and returns false.
	Insert(val K) bool
	// Delete removes val. Deleting a missing value is a no-op and returns false.
	Delete(val K) bool
	// Find returns the node holding val or nil if not found.
	Find(val K) BSTNode[K]

	LevelOrder() []K
	PreOrder() []K
	InOrder() []K
	PostOrder() []K
	VisitLevelOrder(action func(node BSTNode[K]))
	VisitPreOrder(action func(node BSTNode[K]))
	VisitInOrder(action func(node BSTNode[K]))
	VisitPostOrder(action func(node BSTNode[K]))

	// Height of an absent node is -1, a leaf is 0.
	Height(node BSTNode[K]) int
	// Depth returns the number of edges from the root to the node holding
	// the same value as node, or -1 if there is none.
	Depth(node BSTNode[K]) int
	DepthOf(val K) int
	IsBalanced() bool
	// Rebalance rebuilds the tree from its in-order values if it is not
	// balanced. It returns whether the tree was rebuilt.
	Rebalance() bool
	Release()
}
