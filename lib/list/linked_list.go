package list

import (
	"github.com/benz9527/xbst/lib/infra"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// The root is a sentinel element, root.next is the head and
// root.prev is the tail. An empty list links root to itself.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{}
	l.root.listRef = l
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.prev
}

// insertAfter links newE right behind at.
func (l *doublyLinkedList[T]) insertAfter(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.listRef = l
	newE.prev = at
	newE.next = at.next
	at.next.prev = newE
	at.next = newE
	l.len++
	return newE
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if l == nil || l.root == nil || len(values) <= 0 {
		return nil
	}
	elements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		elements = append(elements, l.PushBack(v))
	}
	return elements
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 ||
		targetE == nil || targetE == l.root || targetE.listRef != l {
		return nil
	}

	targetE.prev.next = targetE.next
	targetE.next.prev = targetE.prev

	// avoid memory leaks
	targetE.listRef = nil
	targetE.next = nil
	targetE.prev = nil

	l.len--
	return targetE
}

func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return infra.NewErrorStack("[doubly-linked-list] empty")
	}

	var (
		iterator       = l.root.next
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

func (l *doublyLinkedList[T]) FindFirst(targetV T) (*NodeElement[T], bool) {
	if l == nil || l.root == nil || l.len == 0 {
		return nil, false
	}
	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if iterator.Value == targetV {
			return iterator, true
		}
	}
	return nil, false
}
