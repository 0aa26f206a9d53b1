package Queues

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	// Push item to the back of the queue.
	Push(item T)
	// Pop the item at the front of the queue. Returns *EmptyQueueError when the queue is empty.
	Pop() (T, error)
	// Peek at the front item without removing it. The second return value is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	// Shrink the backing array to fit the current content.
	Shrink()
	// Clear the queue without releasing the backing array.
	Clear()
	Size() uint
	resize(newLen uint)
}

// EmptyQueueError is returned when popping from an empty Queue.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Pop: queue is empty"
}
