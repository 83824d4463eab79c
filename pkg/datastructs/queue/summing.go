package queue

import "golang.org/x/exp/constraints"

// Number is any type Summing can add up.
type Number interface {
	constraints.Integer | constraints.Float
}

// Summing is a Linked queue of numbers that can report the sum of what it
// currently holds.
type Summing[N Number] struct {
	Linked[N]
}

// NewSumming creates an empty Summing queue.
func NewSumming[N Number]() *Summing[N] {
	return &Summing[N]{}
}

// Push appends item and returns q for chaining.
func (q *Summing[N]) Push(item N) *Summing[N] {
	q.c.pushBack(item)
	return q
}

// Sum walks the queue front to rear and returns the total of the items
// present right now. Dequeued items are not counted. Integer totals wrap on
// overflow.
func (q *Summing[N]) Sum() N {
	var total N
	q.c.each(func(v N) {
		total += v
	})
	return total
}
