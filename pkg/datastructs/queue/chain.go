package queue

// node is a single link in a chain. It owns value and, through next,
// every node behind it.
type node[T any] struct {
	value T
	next  *node[T]
}

// chain is a singly linked list of owned nodes with O(1) append at the tail
// and O(1) removal at the head. It is the storage behind Linked, Summing and
// TextQueue.
//
// Invariants:
//   - count == 0 iff head == nil iff tail == nil
//   - following next from head count-1 times reaches tail
//   - tail.next == nil
type chain[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// len returns the number of live nodes.
func (c *chain[T]) len() int {
	return c.count
}

// pushBack links a new node holding v after the current tail.
func (c *chain[T]) pushBack(v T) {
	n := &node[T]{value: v}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.count++
}

// popFront detaches and returns the head node, or nil if the chain is empty.
func (c *chain[T]) popFront() *node[T] {
	if c.head == nil {
		return nil
	}

	front := c.head
	c.head = front.next
	if c.head == nil {
		c.tail = nil
	}

	front.next = nil
	c.count--
	return front
}

// each calls fn for every value from head to tail without modifying the chain.
func (c *chain[T]) each(fn func(T)) {
	for n := c.head; n != nil; n = n.next {
		fn(n.value)
	}
}

// reset removes every node. If release is non-nil it receives each value in
// FIFO order before the node is dropped.
func (c *chain[T]) reset(release func(T)) {
	for n := c.popFront(); n != nil; n = c.popFront() {
		if release != nil {
			release(n.value)
		}
		n.value = zero[T]()
	}
}
