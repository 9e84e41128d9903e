package matstack

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmpty is returned when popping a stack that holds no matrices
var ErrEmpty = errors.New("matstack: pop on empty stack")

// Stack is a LIFO of 4x4 transform snapshots.
// Matrices are stored by value, so a pushed matrix never aliases the caller's.
type Stack struct {
	mats []mgl32.Mat4
}

// New returns an empty stack with room for capacity snapshots
func New(capacity int) *Stack {
	return &Stack{mats: make([]mgl32.Mat4, 0, capacity)}
}

// Push stores a copy of m
func (s *Stack) Push(m mgl32.Mat4) {
	s.mats = append(s.mats, m)
}

// Pop removes and returns the most recently pushed matrix
func (s *Stack) Pop() (mgl32.Mat4, error) {
	n := len(s.mats)
	if n == 0 {
		return mgl32.Mat4{}, ErrEmpty
	}
	m := s.mats[n-1]
	s.mats = s.mats[:n-1]
	return m, nil
}

// MustPop is Pop for callers that keep push/pop balanced themselves.
// It panics on an empty stack.
func (s *Stack) MustPop() mgl32.Mat4 {
	m, err := s.Pop()
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of stored matrices
func (s *Stack) Len() int {
	return len(s.mats)
}

// Reset drops every stored matrix, keeping the backing array
func (s *Stack) Reset() {
	s.mats = s.mats[:0]
}
