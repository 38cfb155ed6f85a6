package router

import "github.com/BrandonKowalski/minimenu/pkg/minimenu"

// StackEntry is a screen that can be returned to: the input it was started
// with and its menu's snapshot at the moment the user left it.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume *minimenu.Snapshot
}

func (e StackEntry) visit() Visit {
	return Visit{Input: e.Input, Resume: e.Resume}
}

// Stack is the back-navigation history, most recent entry last.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records screen before moving away from it. A nil resume means the
// screen starts fresh when the user comes back.
func (s *Stack) Push(screen Screen, input any, resume *minimenu.Snapshot) {
	s.entries = append(s.entries, StackEntry{Screen: screen, Input: input, Resume: resume})
}

// Pop removes the most recent entry. It returns nil on an empty stack.
func (s *Stack) Pop() *StackEntry {
	top := s.Peek()
	if top == nil {
		return nil
	}
	entry := *top
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// PopTo unwinds to the most recent entry for screen, removing it and
// everything pushed after it. The stack is left untouched and nil returned
// when screen is not on it.
func (s *Stack) PopTo(screen Screen) *StackEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen == screen {
			entry := s.entries[i]
			s.entries = s.entries[:i]
			return &entry
		}
	}
	return nil
}

// Peek returns the most recent entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }
func (s *Stack) Len() int      { return len(s.entries) }

// Clear drops the whole history.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
