package queue

// Queue is a FIFO queue. It is not thread safe.
type Queue[E comparable] interface {
	Len() int64
	// Enqueue appends item at the back of the queue.
	Enqueue(item E)
	// Dequeue removes and returns the front item.
	// ok is false if the queue is empty.
	Dequeue() (item E, ok bool)
	// Peek returns the front item without removing it.
	Peek() (item E, ok bool)
}
