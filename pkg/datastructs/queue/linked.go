package queue

// Linked is an unbounded FIFO queue over a chain of nodes.
// The zero value is an empty queue ready to use. It is NOT thread-safe.
type Linked[T any] struct {
	c chain[T]
}

// NewLinked creates an empty Linked queue.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// NewRefs creates a queue of pointers. The queue stores the pointer values
// only: it never dereferences, copies or releases what they point to, so the
// referents' lifetime stays with the caller.
func NewRefs[T any]() *Linked[*T] {
	return &Linked[*T]{}
}

// Enqueue appends item at the rear. It always returns nil.
func (q *Linked[T]) Enqueue(item T) error {
	q.c.pushBack(item)
	return nil
}

// Push appends item and returns q, so insertions can be chained:
//
//	q.Push(1).Push(2).Push(3)
func (q *Linked[T]) Push(item T) *Linked[T] {
	q.c.pushBack(item)
	return q
}

// Dequeue removes and returns the front item.
// Returns (zero, false) if the queue is empty.
func (q *Linked[T]) Dequeue() (T, bool) {
	n := q.c.popFront()
	if n == nil {
		return zero[T](), false
	}
	v := n.value
	n.value = zero[T]()
	return v, true
}

// Size returns the number of queued items.
func (q *Linked[T]) Size() int {
	return q.c.len()
}

// IsEmpty reports whether the queue holds no items.
func (q *Linked[T]) IsEmpty() bool {
	return q.c.len() == 0
}

// Reset drops every queued item.
func (q *Linked[T]) Reset() {
	q.c.reset(nil)
}
