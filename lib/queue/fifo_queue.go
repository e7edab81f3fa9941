package queue

import (
	"github.com/benz9527/xbst/lib/list"
)

var _ Queue[struct{}] = (*fifoQueue[struct{}])(nil)

type fifoQueue[E comparable] struct {
	elements list.LinkedList[E]
}

func (q *fifoQueue[E]) Len() int64 {
	return q.elements.Len()
}

func (q *fifoQueue[E]) Enqueue(item E) {
	q.elements.PushBack(item)
}

func (q *fifoQueue[E]) Dequeue() (item E, ok bool) {
	front := q.elements.Front()
	if front == nil {
		return item, false
	}
	return q.elements.Remove(front).Value, true
}

func (q *fifoQueue[E]) Peek() (item E, ok bool) {
	front := q.elements.Front()
	if front == nil {
		return item, false
	}
	return front.Value, true
}

func NewFIFOQueue[E comparable](items ...E) Queue[E] {
	q := &fifoQueue[E]{
		elements: list.NewLinkedList[E](),
	}
	for _, item := range items {
		q.Enqueue(item)
	}
	return q
}
