package tree

import (
	"github.com/benz9527/xbst/lib/infra"
	"github.com/benz9527/xbst/lib/queue"
)

type traverseOrder uint8

const (
	levelOrder traverseOrder = iota
	preOrder
	inOrder
	postOrder
)

// traverse is the single walker behind the collect and visit modes.
func (tree *bsTree[K]) traverse(order traverseOrder, action func(x *bstNode[K])) {
	if tree.root == nil || action == nil {
		return
	}
	switch order {
	case levelOrder:
		levelOrderWalk(tree.root, action)
	case preOrder:
		preOrderWalk(tree.root, action)
	case inOrder:
		inOrderWalk(tree.root, action)
	case postOrder:
		postOrderWalk(tree.root, action)
	default:
		// impossible run to here
		panic( /* debug assertion */ "[bstree] unknown traverse order")
	}
}

// BFS, left child is enqueued before the right one.
func levelOrderWalk[K infra.OrderedKey](root *bstNode[K], action func(x *bstNode[K])) {
	q := queue.NewFIFOQueue(root)
	for q.Len() > 0 {
		x, _ := q.Dequeue()
		action(x)
		if x.left != nil {
			q.Enqueue(x.left)
		}
		if x.right != nil {
			q.Enqueue(x.right)
		}
	}
}

func preOrderWalk[K infra.OrderedKey](x *bstNode[K], action func(x *bstNode[K])) {
	if x == nil {
		return
	}
	action(x)
	preOrderWalk(x.left, action)
	preOrderWalk(x.right, action)
}

func inOrderWalk[K infra.OrderedKey](x *bstNode[K], action func(x *bstNode[K])) {
	if x == nil {
		return
	}
	inOrderWalk(x.left, action)
	action(x)
	inOrderWalk(x.right, action)
}

func postOrderWalk[K infra.OrderedKey](x *bstNode[K], action func(x *bstNode[K])) {
	if x == nil {
		return
	}
	postOrderWalk(x.left, action)
	postOrderWalk(x.right, action)
	action(x)
}

func (tree *bsTree[K]) collect(order traverseOrder) []K {
	res := make([]K, 0, tree.count)
	tree.traverse(order, func(x *bstNode[K]) {
		res = append(res, x.val)
	})
	return res
}

func (tree *bsTree[K]) visit(order traverseOrder, action func(node BSTNode[K])) {
	if action == nil {
		return
	}
	tree.traverse(order, func(x *bstNode[K]) {
		action(x)
	})
}

func (tree *bsTree[K]) LevelOrder() []K {
	return tree.collect(levelOrder)
}

func (tree *bsTree[K]) PreOrder() []K {
	return tree.collect(preOrder)
}

// InOrder values are sorted ascending.
func (tree *bsTree[K]) InOrder() []K {
	return tree.collect(inOrder)
}

func (tree *bsTree[K]) PostOrder() []K {
	return tree.collect(postOrder)
}

func (tree *bsTree[K]) VisitLevelOrder(action func(node BSTNode[K])) {
	tree.visit(levelOrder, action)
}

func (tree *bsTree[K]) VisitPreOrder(action func(node BSTNode[K])) {
	tree.visit(preOrder, action)
}

func (tree *bsTree[K]) VisitInOrder(action func(node BSTNode[K])) {
	tree.visit(inOrder, action)
}

func (tree *bsTree[K]) VisitPostOrder(action func(node BSTNode[K])) {
	tree.visit(postOrder, action)
}
