package frontier

// Queue is a FIFO frontier.
type Queue struct {
	items []*Entry
}

// NewQueue returns a queue with room for capHint entries.
func NewQueue(capHint int) *Queue {
	return &Queue{items: make([]*Entry, 0, capHint)}
}

// Push appends e at the tail.
func (q *Queue) Push(e *Entry) { q.items = append(q.items, e) }

// Pop removes and returns the head. It panics on an empty queue.
func (q *Queue) Pop() *Entry {
	e := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]

	return e
}

// Len returns the number of queued entries.
func (q *Queue) Len() int { return len(q.items) }

// Stack is a LIFO frontier.
type Stack struct {
	items []*Entry
}

// NewStack returns a stack with room for capHint entries.
func NewStack(capHint int) *Stack {
	return &Stack{items: make([]*Entry, 0, capHint)}
}

// Push places e on top.
func (s *Stack) Push(e *Entry) { s.items = append(s.items, e) }

// Pop removes and returns the top entry. It panics on an empty stack.
func (s *Stack) Pop() *Entry {
	n := len(s.items) - 1
	e := s.items[n]
	s.items[n] = nil
	s.items = s.items[:n]

	return e
}

// Len returns the number of stacked entries.
func (s *Stack) Len() int { return len(s.items) }
