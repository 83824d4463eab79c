package queue

import "errors"

var (
	// ErrQueueFull is returned when enqueueing into a Ring that holds Cap() items.
	ErrQueueFull = errors.New("queue is full")
	// ErrEmpty is returned by ReadByte on an empty Ring.
	// Dequeue reports emptiness with its boolean result instead.
	ErrEmpty = errors.New("queue is empty")
)
