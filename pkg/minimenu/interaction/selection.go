package interaction

import "fmt"

// NextIndex applies a navigation action to the selected index of a list with
// count entries. count must be at least 1 and action must not be Select;
// both are programmer errors and panic.
func NextIndex(action Action, selected, count int) int {
	if count < 1 {
		panic(fmt.Sprintf("interaction: NextIndex with count %d", count))
	}

	n := action.N
	if n < 0 {
		n = 0
	}
	last := count - 1

	switch action.Kind {
	case ActionNothing:
		return selected
	case ActionNext:
		if selected >= last {
			return 0
		}
		return selected + 1
	case ActionPrevious:
		if selected == 0 {
			return last
		}
		return selected - 1
	case ActionForwardWrapping:
		return (selected + n%count) % count
	case ActionBackwardWrapping:
		return (selected + count - n%count) % count
	case ActionForward:
		if n >= last-selected {
			return last
		}
		return selected + n
	case ActionBackward:
		if n >= selected {
			return 0
		}
		return selected - n
	case ActionBeginning:
		return 0
	case ActionEnd:
		return last
	case ActionJumpTo:
		if n > last {
			return last
		}
		return n
	case ActionSelect:
		panic("interaction: NextIndex called with Select")
	}

	panic(fmt.Sprintf("interaction: unknown action %s", action))
}

// direction is the way a skip-over search walks after landing on an
// entry that cannot be selected.
type direction int

const (
	forward direction = iota
	backward
)

// searchPlan returns the primary search direction and whether the search
// may wrap around the ends of the list.
func searchPlan(action Action, selected, target int) (direction, bool) {
	switch action.Kind {
	case ActionNext, ActionForwardWrapping:
		return forward, true
	case ActionPrevious, ActionBackwardWrapping:
		return backward, true
	case ActionBackward, ActionEnd:
		return backward, false
	case ActionJumpTo:
		if target < selected {
			return backward, false
		}
		return forward, false
	default:
		return forward, false
	}
}

// NextSelectableIndex is NextIndex with skip-over: if the computed entry is
// not selectable, the search continues in the action's direction. Wrapping
// actions wrap while searching; saturating actions search toward the end
// they clamp at and then turn around. If nothing selectable is found the
// selection does not move.
func NextSelectableIndex(action Action, selected, count int, selectable func(int) bool) int {
	target := NextIndex(action, selected, count)
	if selectable(target) {
		return target
	}

	dir, wrap := searchPlan(action, selected, target)
	if wrap {
		idx := target
		for i := 1; i < count; i++ {
			if dir == forward {
				idx = (idx + 1) % count
			} else {
				idx = (idx + count - 1) % count
			}
			if idx == selected {
				break
			}
			if selectable(idx) {
				return idx
			}
		}
		return selected
	}

	if idx, ok := scan(target, count, dir, selectable); ok {
		return idx
	}
	if idx, ok := scan(target, count, 1-dir, selectable); ok {
		return idx
	}
	return selected
}

func scan(from, count int, dir direction, selectable func(int) bool) (int, bool) {
	if dir == forward {
		for i := from + 1; i < count; i++ {
			if selectable(i) {
				return i, true
			}
		}
		return 0, false
	}
	for i := from - 1; i >= 0; i-- {
		if selectable(i) {
			return i, true
		}
	}
	return 0, false
}
