package interaction

import "testing"

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		selected int
		count    int
		want     int
	}{
		{"next", Next, 2, 5, 3},
		{"next wraps", Next, 4, 5, 0},
		{"previous", Previous, 2, 5, 1},
		{"previous wraps", Previous, 0, 5, 4},
		{"forward wrapping", ForwardWrapping(3), 3, 5, 1},
		{"forward wrapping huge", ForwardWrapping(100000), 7, 30, 17},
		{"backward wrapping", BackwardWrapping(3), 1, 5, 3},
		{"backward wrapping huge", BackwardWrapping(100000), 7, 30, 27},
		{"forward saturates", Forward(10), 3, 5, 4},
		{"forward", Forward(1), 3, 5, 4},
		{"backward saturates", Backward(10), 3, 5, 0},
		{"backward", Backward(2), 3, 5, 1},
		{"beginning", Beginning, 3, 5, 0},
		{"end", End, 1, 5, 4},
		{"jump inside", JumpTo(2), 0, 5, 2},
		{"jump past end", JumpTo(9), 0, 5, 4},
		{"negative n", Forward(-3), 2, 5, 2},
		{"nothing", Nothing, 2, 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextIndex(tt.action, tt.selected, tt.count); got != tt.want {
				t.Errorf("NextIndex(%s, %d, %d) = %d, want %d", tt.action, tt.selected, tt.count, got, tt.want)
			}
		})
	}
}

func TestNextIndexSingleEntry(t *testing.T) {
	actions := []Action{
		Next, Previous, ForwardWrapping(7), BackwardWrapping(7),
		Forward(3), Backward(3), Beginning, End, JumpTo(4),
	}
	for _, a := range actions {
		if got := NextIndex(a, 0, 1); got != 0 {
			t.Errorf("NextIndex(%s, 0, 1) = %d, want 0", a, got)
		}
	}
}

func TestNextPreviousRoundTrip(t *testing.T) {
	for count := 1; count <= 12; count++ {
		for selected := 0; selected < count; selected++ {
			if got := NextIndex(Previous, NextIndex(Next, selected, count), count); got != selected {
				t.Fatalf("count=%d selected=%d: next then previous = %d", count, selected, got)
			}
			if got := NextIndex(Next, NextIndex(Previous, selected, count), count); got != selected {
				t.Fatalf("count=%d selected=%d: previous then next = %d", count, selected, got)
			}
		}
	}
}

func TestWrappingRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 29, 30, 31, 100000, 1 << 40} {
		for selected := 0; selected < 30; selected++ {
			moved := NextIndex(ForwardWrapping(n), selected, 30)
			if got := NextIndex(BackwardWrapping(n), moved, 30); got != selected {
				t.Fatalf("n=%d selected=%d: round trip = %d", n, selected, got)
			}
		}
	}
}

func TestSaturatingStaysInRange(t *testing.T) {
	for count := 1; count <= 8; count++ {
		for selected := 0; selected < count; selected++ {
			for n := 0; n < 20; n++ {
				if got := NextIndex(Forward(n), selected, count); got >= count {
					t.Fatalf("Forward(%d) from %d of %d = %d", n, selected, count, got)
				}
				if got := NextIndex(Backward(n), selected, count); got < 0 {
					t.Fatalf("Backward(%d) from %d of %d = %d", n, selected, count, got)
				}
			}
		}
	}
}

func TestJumpTo(t *testing.T) {
	const count = 6
	for n := 0; n < 20; n++ {
		got := NextIndex(JumpTo(n), 3, count)
		want := n
		if n >= count {
			want = count - 1
		}
		if got != want {
			t.Errorf("JumpTo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNextIndexPanics(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	expectPanic("select", func() { NextIndex(Select, 0, 3) })
	expectPanic("empty", func() { NextIndex(Next, 0, 0) })
}

func TestNextSelectableIndex(t *testing.T) {
	// Index 0 and 3 are section headers.
	selectable := func(i int) bool { return i != 0 && i != 3 }

	tests := []struct {
		name     string
		action   Action
		selected int
		want     int
	}{
		{"next skips header", Next, 2, 4},
		{"next wraps past header", Next, 5, 1},
		{"previous skips header", Previous, 4, 2},
		{"previous wraps past header", Previous, 1, 5},
		{"beginning lands after header", Beginning, 4, 1},
		{"jump onto header goes forward", JumpTo(3), 1, 4},
		{"jump backward onto header goes backward", JumpTo(3), 5, 2},
		{"backward onto header turns around", Backward(5), 2, 1},
		{"forward wrapping skips", ForwardWrapping(7), 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextSelectableIndex(tt.action, tt.selected, 6, selectable); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextSelectableIndexNoneSelectable(t *testing.T) {
	none := func(int) bool { return false }
	for _, a := range []Action{Next, Previous, Forward(2), End, JumpTo(1)} {
		if got := NextSelectableIndex(a, 2, 5, none); got != 2 {
			t.Errorf("%s: selection moved to %d", a, got)
		}
	}
}
