package queue

// Queue is the FIFO capability shared by every queue in this package.
// Implementations differ only in how they store elements; callers pick one
// explicitly through its constructor.
type Queue[T any] interface {
	// Enqueue appends item at the rear.
	// Node-backed queues never fail. A full Ring returns ErrQueueFull.
	Enqueue(item T) error

	// Dequeue removes and returns the front item.
	// Returns (zero, false) if the queue is empty, without touching its state.
	Dequeue() (T, bool)

	// Size returns the number of items currently queued.
	Size() int
}

func zero[T any]() (z T) { return }
