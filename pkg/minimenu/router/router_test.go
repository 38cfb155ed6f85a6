package router

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
)

func TestRunRequiresTransition(t *testing.T) {
	r := New().Register(0, func(Visit) (any, error) { return nil, nil })
	if err := r.Run(0, nil); err == nil {
		t.Error("Run() without a transition expected error")
	}
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New().OnTransition(func(Screen, any, *Stack) (Screen, Visit) { return ScreenExit, Visit{} })
	if err := r.Run(3, nil); err == nil {
		t.Error("Run() of an unregistered screen expected error")
	}
}

func TestRunWrapsScreenErrors(t *testing.T) {
	boom := errors.New("boom")
	r := New().
		Register(0, func(Visit) (any, error) { return nil, boom }).
		OnTransition(func(Screen, any, *Stack) (Screen, Visit) { return ScreenExit, Visit{} })

	if err := r.Run(0, nil); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped boom", err)
	}
}

func TestCancelPopsWithSnapshot(t *testing.T) {
	snapshot := &minimenu.Snapshot{Selected: 4}
	var seen []Visit

	r := New()
	r.Register(0, func(v Visit) (any, error) {
		seen = append(seen, v)
		if len(seen) == 1 {
			return "forward", nil
		}
		return nil, minimenu.ErrCancelled
	})
	r.Register(1, func(v Visit) (any, error) {
		seen = append(seen, v)
		return nil, minimenu.ErrCancelled
	})
	r.OnTransition(func(from Screen, _ any, stack *Stack) (Screen, Visit) {
		stack.Push(from, "main input", snapshot)
		return 1, Visit{Input: "sub input"}
	})

	if err := r.Run(0, "main input"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(seen) != 3 {
		t.Fatalf("visited %d screens, want 3", len(seen))
	}
	if seen[0].Resume != nil {
		t.Error("first visit should start fresh")
	}
	if seen[1].Input != "sub input" {
		t.Errorf("sub visit input = %v", seen[1].Input)
	}
	if seen[2].Input != "main input" || seen[2].Resume != snapshot {
		t.Errorf("return visit = %+v, want main input with snapshot", seen[2])
	}
	if !r.Stack().IsEmpty() {
		t.Errorf("stack length = %d after exit", r.Stack().Len())
	}
}

func TestStack(t *testing.T) {
	s := NewStack()
	if s.Pop() != nil || s.Peek() != nil {
		t.Fatal("empty stack should pop and peek nil")
	}

	s.Push(1, "a", nil)
	s.Push(2, "b", &minimenu.Snapshot{Selected: 1})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d", s.Len())
	}
	if top := s.Peek(); top.Screen != 2 || top.Resume.Selected != 1 {
		t.Errorf("Peek() = %+v", top)
	}

	next, visit := Back(s)
	if next != 2 || visit.Input != "b" {
		t.Errorf("Back() = %d, %+v", next, visit)
	}

	s.Push(3, "c", nil)
	s.Push(4, "d", nil)
	next, visit = BackTo(s, 1)
	if next != 1 || visit.Input != "a" || !s.IsEmpty() {
		t.Errorf("BackTo(1) = %d, %+v with %d entries left", next, visit, s.Len())
	}

	s.Push(5, "e", nil)
	if next, _ := BackTo(s, 9); next != ScreenExit || s.Len() != 1 {
		t.Errorf("BackTo() of a missing screen = %d with %d entries, want ScreenExit and 1", next, s.Len())
	}

	s.Clear()
	if next, _ := Back(s); next != ScreenExit {
		t.Errorf("Back() on empty stack = %d, want ScreenExit", next)
	}
}
