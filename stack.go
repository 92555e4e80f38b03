package rpcalc

// Stack is a last-in-first-out container. The zero value is an empty stack
// ready to use. It is not safe to use a Stack concurrently.
type Stack[T any] struct {
	s []T
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

// Pop removes the top of the stack and returns it. If the stack is empty, the
// result is the zero value of T and false.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.s) == 0 {
		return zero, false
	}
	k := len(s.s) - 1
	v := s.s[k]
	// Clear the slot so that popped values don't stay reachable.
	s.s[k] = zero
	s.s = s.s[:k]
	return v, true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.s)
}
