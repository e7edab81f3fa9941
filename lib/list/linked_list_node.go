package list

type NodeElement[T comparable] struct {
	prev, next *NodeElement[T]
	listRef    *doublyLinkedList[T]
	Value      T // Placed at the end of the struct to avoid padding.
}

func newNodeElement[T comparable](v T, list *doublyLinkedList[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.next != nil && e.next != e.listRef.root
}

func (e *NodeElement[T]) HasPrev() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.prev != nil && e.prev != e.listRef.root
}

// Next returns the next element or nil at the end of the list.
func (e *NodeElement[T]) Next() *NodeElement[T] {
	if !e.HasNext() {
		return nil
	}
	return e.next
}

// Prev returns the previous element or nil at the head of the list.
func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if !e.HasPrev() {
		return nil
	}
	return e.prev
}
