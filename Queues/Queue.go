package Queues

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	//Push item to the back.
	Push(item T)
	//Pop the front item. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek the front item without removing it. Zero value if empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array. It's meant to be
// reused: Clear drops the content but keeps the array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the array to fit the current content.
	Shrink()
	//Clear the content, releasing references held by the array.
	Clear()
	Size() uint
	Cap() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
