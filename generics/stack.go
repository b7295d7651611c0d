package generics

// ── Stack[T] ──────────────────────────────────────────────────────────────────
// LIFO stack backed by a slice. The zero value is ready to use.
// A Stack is owned by one goroutine; callers that share it must lock around it.

type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding items, pushed in order, so the last
// argument ends up on top.
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(items))}
	for _, v := range items {
		s.Push(v)
	}
	return s
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element. On an empty stack it returns the
// zero value of T and false.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	top := s.items[last]
	s.items[last] = zero // drop the reference held by the backing array
	s.items = s.items[:last]
	return top, true
}

// Peek returns the top element without removing it. On an empty stack it
// returns the zero value of T and false.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int      { return len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear removes every element.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
