package list

// Note that the linked list is not thread safe.

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	Len() int64
	// Front returns the first element of list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of list l or nil if the list is empty.
	Back() *NodeElement[T]
	// PushFront inserts a new element e with value v at the front of list l and returns e.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element e with value v at the back of list l and returns e.
	PushBack(v T) *NodeElement[T]
	// AppendValue appends the values to the list l and returns the new elements.
	AppendValue(values ...T) []*NodeElement[T]
	// Remove removes targetE from l if targetE is an element of list l and returns
	// targetE, or nil if targetE belongs to another list or the list is empty.
	Remove(targetE *NodeElement[T]) *NodeElement[T]
	// Foreach traverses the list l and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	// Removing the visited element inside fn is allowed.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	// FindFirst finds the first element holding v.
	FindFirst(v T) (*NodeElement[T], bool)
}
