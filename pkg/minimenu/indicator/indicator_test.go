package indicator

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas/canvastest"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
)

var row = image.Rect(0, 10, 100, 20)

func TestFillWidth(t *testing.T) {
	tests := []struct {
		input interaction.InputState
		want  int
	}{
		{interaction.Idle, 0},
		{interaction.Active(interaction.Next), 0},
		{interaction.InProgress(0), 0},
		{interaction.InProgress(255), 100},
		{interaction.InProgress(128), 50},
		{interaction.InProgress(127), 49},
	}
	for _, tt := range tests {
		if got := FillWidth(tt.input, 100); got != tt.want {
			t.Errorf("FillWidth(%s) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestStyleShapes(t *testing.T) {
	var state State

	line := Line{}.Shape(&state, row, 0)
	if line.Fill != image.Rect(0, 10, 1, 20) {
		t.Errorf("line fill = %v", line.Fill)
	}

	border := Border{}.Shape(&state, row, 30)
	if border.Outline != row || border.Fill != image.Rect(0, 10, 30, 20) {
		t.Errorf("border = %+v", border)
	}

	rect := Rectangle{}.Shape(&state, row, 0)
	if rect.Fill != row {
		t.Errorf("rectangle fill = %v", rect.Fill)
	}

	tri := Triangle{}.Shape(&state, row, 0)
	if !tri.HasTriangle || !tri.Fill.Empty() {
		t.Errorf("triangle = %+v", tri)
	}
	if tri.Triangle[2].X != 4 {
		t.Errorf("triangle tip x = %d, want 4", tri.Triangle[2].X)
	}

	over := Border{}.Shape(&state, row, 500)
	if over.Fill != row {
		t.Errorf("fill wider than bounds = %v", over.Fill)
	}
}

func TestPaddingClearsTriangle(t *testing.T) {
	var state State
	for _, h := range []int{8, 10, 16} {
		pad := Triangle{}.Padding(&state, h)
		shape := Triangle{}.Shape(&state, image.Rect(0, 0, 100, h), 0)
		if pad.Left <= shape.Triangle[2].X {
			t.Errorf("height %d: padding %d does not clear tip at %d", h, pad.Left, shape.Triangle[2].X)
		}
	}
}

func TestAnimatedTriangleNudges(t *testing.T) {
	style := AnimatedTriangle{Period: 8}
	var state State

	var xs []int
	for i := 0; i < 8; i++ {
		xs = append(xs, style.Shape(&state, row, 0).Triangle[0].X)
		style.Tick(&state, interaction.Idle)
	}
	want := []int{0, 0, 1, 1, 2, 1, 1, 0}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("phase %d x = %d, want %d (all %v)", i, xs[i], want[i], xs)
		}
	}

	style.Tick(&state, interaction.Idle)
	style.Tick(&state, interaction.InProgress(10))
	if state.Phase != 0 {
		t.Errorf("active input did not reset phase: %d", state.Phase)
	}

	style.Tick(&state, interaction.Idle)
	style.OnTargetChanged(&state)
	if state.Phase != 0 {
		t.Errorf("target change did not reset phase: %d", state.Phase)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"line", "border", "triangle", "animated_triangle", "rectangle"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("zigzag"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("ByName(zigzag) err = %v", err)
	}
}

func TestIndicatorMovesTowardTarget(t *testing.T) {
	ind := New(Border{}, 2)
	ind.Relayout(10)

	ind.SetTarget(20)
	if ind.Offset() != 20 {
		t.Fatalf("first target should be jumped to, offset = %d", ind.Offset())
	}

	ind.SetTarget(30)
	ind.Update(interaction.Idle)
	if ind.Offset() != 25 {
		t.Fatalf("offset after one tick = %d, want 25", ind.Offset())
	}
	ind.Update(interaction.Idle)
	ind.Update(interaction.Idle)
	if ind.Offset() != 30 {
		t.Errorf("offset = %d, want 30", ind.Offset())
	}
}

type countingStyle struct {
	Line
	changes *int
}

func (c countingStyle) OnTargetChanged(*State) { *c.changes++ }

func TestIndicatorNotifiesStyleOnChange(t *testing.T) {
	changes := 0
	ind := New(countingStyle{changes: &changes}, 3)
	ind.SetTarget(0)
	ind.SetTarget(10)
	ind.SetTarget(10)
	ind.SetTarget(20)
	if changes != 2 {
		t.Errorf("OnTargetChanged called %d times, want 2", changes)
	}
}

func TestIndicatorDrawClipsContent(t *testing.T) {
	rec := canvastest.New(128, 64)
	ind := New(Border{}, 1)

	var clip image.Rectangle
	err := ind.Draw(rec, row, interaction.InProgress(255), color.White, func(c canvas.Canvas) error {
		clip = c.Bounds()
		return c.Text("hi", image.Pt(3, 11), color.Black)
	})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if clip != row {
		t.Errorf("content clip = %v, want %v", clip, row)
	}
	if len(rec.Kind("stroke")) != 1 || len(rec.Kind("fill")) != 1 {
		t.Errorf("unexpected ops %+v", rec.Ops)
	}
	if texts := rec.Texts(); len(texts) != 1 || texts[0].Clip != row {
		t.Errorf("inverted text not clipped: %+v", texts)
	}
}

func TestIndicatorDrawSkipsContentWithoutFill(t *testing.T) {
	rec := canvastest.New(128, 64)
	ind := New(Border{}, 1)

	called := false
	if err := ind.Draw(rec, row, interaction.Idle, color.White, func(canvas.Canvas) error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if called {
		t.Error("content drawn with an empty fill")
	}
}

func TestIndicatorDrawPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	rec := canvastest.New(128, 64)
	rec.Fail = boom

	err := New(Rectangle{}, 1).Draw(rec, row, interaction.Idle, color.White, nil)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestIndicatorSnapshotRestore(t *testing.T) {
	ind := New(AnimatedTriangle{Period: 10}, 4)
	ind.Relayout(12)
	ind.SetTarget(0)
	ind.SetTarget(36)
	ind.Update(interaction.Idle)
	snap := ind.Snapshot()

	other := New(AnimatedTriangle{Period: 10}, 4)
	other.Relayout(12)
	other.Restore(snap)
	for i := 0; i < 5; i++ {
		ind.Update(interaction.Idle)
		other.Update(interaction.Idle)
		if ind.Offset() != other.Offset() || ind.Snapshot() != other.Snapshot() {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, ind.Snapshot(), other.Snapshot())
		}
	}
}
