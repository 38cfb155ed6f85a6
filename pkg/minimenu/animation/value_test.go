package animation

import (
	"math"
	"testing"
)

func TestValueReachesTargetAndStops(t *testing.T) {
	v := New(0, 3)
	v.SetTarget(10)

	want := []int{3, 6, 9, 10, 10, 10}
	for i, w := range want {
		v.Update()
		if v.Current() != w {
			t.Fatalf("tick %d: current = %d, want %d", i, v.Current(), w)
		}
	}
	if !v.Done() {
		t.Error("expected value to be done")
	}
}

func TestValueMovesDown(t *testing.T) {
	v := New(20, 4)
	v.SetTarget(13)

	v.Update()
	if v.Current() != 16 {
		t.Fatalf("current = %d, want 16", v.Current())
	}
	v.Update()
	if v.Current() != 13 {
		t.Fatalf("current = %d, want 13", v.Current())
	}
}

func TestValueRetargetContinuesFromCurrent(t *testing.T) {
	v := New(0, 5)
	v.SetTarget(100)
	v.Update()
	v.Update()

	v.SetTarget(0)
	if v.Current() != 10 {
		t.Fatalf("SetTarget moved current to %d", v.Current())
	}
	v.Update()
	if v.Current() != 5 {
		t.Errorf("current = %d, want 5", v.Current())
	}
}

func TestValueStepNeverExceeded(t *testing.T) {
	v := New(-37, 7)
	v.SetTarget(91)

	prev := v.Current()
	for i := 0; i < 100; i++ {
		v.Update()
		delta := v.Current() - prev
		if delta < 0 || delta > 7 {
			t.Fatalf("tick %d moved by %d", i, delta)
		}
		if v.Current() > 91 {
			t.Fatalf("overshoot: %d", v.Current())
		}
		prev = v.Current()
	}
	if v.Current() != 91 {
		t.Errorf("current = %d, want 91", v.Current())
	}
}

func TestValueExtremesDoNotOverflow(t *testing.T) {
	v := New(math.MinInt, math.MaxInt)
	v.SetTarget(math.MaxInt)

	v.Update()
	if v.Current() != -1 {
		t.Fatalf("current = %d, want -1", v.Current())
	}
	v.Update()
	if v.Current() != math.MaxInt-1 {
		t.Fatalf("current = %d, want MaxInt-1", v.Current())
	}
	v.Update()
	v.Update()
	if v.Current() != math.MaxInt {
		t.Errorf("current = %d, want MaxInt", v.Current())
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	run := func() []int {
		v := New(0, StepFor(40, 6))
		var out []int
		targets := []int{40, 40, 0, 0, 0, 25, 25, 25, 25, 25, 25, 25}
		for _, target := range targets {
			v.SetTarget(target)
			v.Update()
			out = append(out, v.Current())
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("replay diverged at %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestStepFor(t *testing.T) {
	tests := []struct {
		distance, frames, want int
	}{
		{10, 5, 2},
		{11, 5, 3},
		{-12, 4, 3},
		{0, 4, 1},
		{9, 0, 9},
		{3, 10, 1},
	}
	for _, tt := range tests {
		if got := StepFor(tt.distance, tt.frames); got != tt.want {
			t.Errorf("StepFor(%d, %d) = %d, want %d", tt.distance, tt.frames, got, tt.want)
		}
	}
}

func TestRestore(t *testing.T) {
	v := Restore(4, 10, 2)
	v.Update()
	if v.Current() != 6 || v.Target() != 10 || v.Step() != 2 {
		t.Errorf("got current=%d target=%d step=%d", v.Current(), v.Target(), v.Step())
	}
}
