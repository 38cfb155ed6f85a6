package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// Screen identifies one menu screen. Applications define their own
// constants with iota.
type Screen int

// ScreenExit is returned by a transition to stop the router.
const ScreenExit Screen = -1

// Visit is what a screen is started with: its input and, when the user
// came back to it, the menu snapshot it was left with.
type Visit struct {
	Input  any
	Resume *minimenu.Snapshot
}

// ScreenFunc runs a screen until it produces a result. Returning
// minimenu.ErrCancelled goes back to the previous screen without
// consulting the transition function.
type ScreenFunc func(visit Visit) (result any, err error)

// TransitionFunc picks the next screen after from completed with result.
// Push onto stack before moving forward to make the move reversible, and
// use Back to return.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, visit Visit)

// Router runs registered screens one after another, with all routing
// decided by a single transition function.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	stack      *Stack
}

func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the function that decides navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts at start with input and returns when a transition yields
// ScreenExit, the user cancels out of the first screen, or a screen fails.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	visit := Visit{Input: input}

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		internal.GetInternalLogger().Debug("Entering screen",
			"screen", int(current),
			"resumed", visit.Resume != nil,
			"depth", r.stack.Len())

		result, err := fn(visit)
		var next Screen
		switch {
		case errors.Is(err, minimenu.ErrCancelled):
			next, visit = Back(r.stack)
		case err != nil:
			return fmt.Errorf("router: screen %d error: %w", current, err)
		default:
			next, visit = r.transition(current, result, r.stack)
		}

		if next == ScreenExit {
			return nil
		}
		current = next
	}
}

// Stack returns the back-stack.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Back pops the most recent entry and returns the visit that resumes it,
// or ScreenExit when there is nothing to go back to.
func Back(stack *Stack) (Screen, Visit) {
	entry := stack.Pop()
	if entry == nil {
		return ScreenExit, Visit{}
	}
	return entry.Screen, entry.visit()
}

// BackTo returns to the most recent visit of screen, discarding everything
// opened after it. It returns ScreenExit when screen is not on the stack.
func BackTo(stack *Stack, screen Screen) (Screen, Visit) {
	entry := stack.PopTo(screen)
	if entry == nil {
		return ScreenExit, Visit{}
	}
	return entry.Screen, entry.visit()
}
