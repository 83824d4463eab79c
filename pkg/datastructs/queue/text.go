package queue

import (
	"github.com/huynhanx03/go-fifo/pkg/pool/byteslice"
	"github.com/huynhanx03/go-fifo/pkg/utils"
)

// Text is a byte buffer owned by whoever holds it.
// Use Clone to hand out a copy that can be changed independently.
type Text []byte

// Clone returns an independent copy of t. A nil Text clones to an empty, non-nil Text.
func (t Text) Clone() Text {
	out := make(Text, len(t))
	copy(out, t)
	return out
}

// Len returns the number of bytes in t.
func (t Text) Len() int {
	return len(t)
}

// String returns t as a string (copied).
func (t Text) String() string {
	return string(t)
}

// TextQueue is a FIFO queue of text that never shares memory with its callers.
// Enqueue stores a private copy drawn from the byte slice pool; Dequeue hands
// back a fresh copy and returns the private one to the pool.
// It is NOT thread-safe.
type TextQueue struct {
	c chain[[]byte]
}

// NewTextQueue creates an empty TextQueue.
func NewTextQueue() *TextQueue {
	return &TextQueue{}
}

// Enqueue stores a copy of t at the rear. t may be reused by the caller
// immediately. It always returns nil.
func (q *TextQueue) Enqueue(t Text) error {
	buf := byteslice.Get(len(t))
	copy(buf, t)
	q.c.pushBack(buf)
	return nil
}

// EnqueueString is Enqueue for a string.
func (q *TextQueue) EnqueueString(s string) error {
	return q.Enqueue(utils.StringToBytes(s))
}

// Push enqueues t and returns q for chaining.
func (q *TextQueue) Push(t Text) *TextQueue {
	_ = q.Enqueue(t)
	return q
}

// PushString enqueues s and returns q for chaining.
func (q *TextQueue) PushString(s string) *TextQueue {
	_ = q.EnqueueString(s)
	return q
}

// Dequeue removes the front text and returns a newly allocated copy of it.
// Returns (nil, false) if the queue is empty.
func (q *TextQueue) Dequeue() (Text, bool) {
	n := q.c.popFront()
	if n == nil {
		return nil, false
	}
	out := Text(n.value).Clone()
	byteslice.Put(n.value)
	n.value = nil
	return out, true
}

// Size returns the number of queued texts.
func (q *TextQueue) Size() int {
	return q.c.len()
}

// IsEmpty reports whether the queue holds no text.
func (q *TextQueue) IsEmpty() bool {
	return q.c.len() == 0
}

// Reset drops every queued text and returns its storage to the pool.
func (q *TextQueue) Reset() {
	q.c.reset(byteslice.Put)
}
