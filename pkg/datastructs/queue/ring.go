package queue

import (
	"github.com/pkg/errors"
)

// DefaultRingCapacity is used when NewRing is given a capacity below 1.
const DefaultRingCapacity = 100

// Ring is a fixed-capacity FIFO queue of bytes backed by a circular buffer.
// It never grows: enqueueing into a full ring fails with ErrQueueFull.
// It is NOT thread-safe.
type Ring struct {
	buf   []byte
	head  int // next slot to read
	tail  int // next slot to write, always (head+count) % len(buf)
	count int
	err   error // sticky Push failure
}

// NewRing creates a Ring holding at most capacity bytes.
// A capacity below 1 falls back to DefaultRingCapacity.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = DefaultRingCapacity
	}
	return &Ring{buf: make([]byte, capacity)}
}

// Enqueue writes c at the rear.
// Returns an error wrapping ErrQueueFull, and leaves the ring untouched, if
// the ring is full.
func (r *Ring) Enqueue(c byte) error {
	if r.count == len(r.buf) {
		return errors.Wrapf(ErrQueueFull, "ring capacity %d", len(r.buf))
	}
	r.buf[r.tail] = c
	r.tail = r.wrap(r.tail + 1)
	r.count++
	return nil
}

// Push enqueues c and returns r for chaining.
// Every call attempts the enqueue. The first failure is kept and reported by
// Err until ClearErr or Reset.
func (r *Ring) Push(c byte) *Ring {
	if err := r.Enqueue(c); err != nil && r.err == nil {
		r.err = err
	}
	return r
}

// Err returns the first failure recorded by Push, if any.
func (r *Ring) Err() error {
	return r.err
}

// ClearErr forgets the failure recorded by Push. Queued bytes are kept.
func (r *Ring) ClearErr() {
	r.err = nil
}

// Dequeue removes and returns the front byte.
// Returns (0, false) if the ring is empty.
func (r *Ring) Dequeue() (byte, bool) {
	if r.count == 0 {
		return 0, false
	}
	c := r.buf[r.head]
	r.head = r.wrap(r.head + 1)
	r.count--
	return c, true
}

// WriteByte implements io.ByteWriter on top of Enqueue.
func (r *Ring) WriteByte(c byte) error {
	return r.Enqueue(c)
}

// ReadByte implements io.ByteReader on top of Dequeue.
func (r *Ring) ReadByte() (byte, error) {
	c, ok := r.Dequeue()
	if !ok {
		return 0, ErrEmpty
	}
	return c, nil
}

// Size returns the number of queued bytes.
func (r *Ring) Size() int {
	return r.count
}

// Cap returns the fixed capacity of the ring.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// IsEmpty returns true if the ring holds no bytes.
func (r *Ring) IsEmpty() bool {
	return r.count == 0
}

// IsFull returns true if the next Enqueue would fail.
func (r *Ring) IsFull() bool {
	return r.count == len(r.buf)
}

// Reset empties the ring, rewinds both indices and clears the Push error.
// The buffer is retained.
func (r *Ring) Reset() {
	clear(r.buf)
	r.head = 0
	r.tail = 0
	r.count = 0
	r.err = nil
}

// wrap returns idx wrapped within the ring capacity.
func (r *Ring) wrap(idx int) int {
	return idx % len(r.buf)
}
