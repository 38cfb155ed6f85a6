package minimenu

import (
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/animation"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/indicator"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// Snapshot is the restorable state of a menu. Pass it back through
// Settings.Resume to continue where a previous session left off; the
// animations resume on the same tick they were saved at.
type Snapshot struct {
	Selected      int
	Mode          DisplayMode
	IdleCountdown uint16
	ScrollCurrent int
	ScrollTarget  int
	Indicator     indicator.Snapshot
	Decode        interaction.DecodeState
}

// Snapshot captures the menu's current state.
func (m *Menu[I, E]) Snapshot() Snapshot {
	return Snapshot{
		Selected:      m.selected,
		Mode:          m.mode,
		IdleCountdown: m.idle,
		ScrollCurrent: m.scroll.Current(),
		ScrollTarget:  m.scroll.Target(),
		Indicator:     m.indicator.Snapshot(),
		Decode:        m.controller.DecodeState(),
	}
}

func (m *Menu[I, E]) resume(s Snapshot) {
	m.selected = m.firstSelectable(s.Selected)
	if m.selected != s.Selected {
		internal.GetInternalLogger().Debug("Resumed selection adjusted", "saved", s.Selected, "selected", m.selected)
	}
	m.mode = s.Mode
	m.idle = s.IdleCountdown
	m.scroll = animation.Restore(s.ScrollCurrent, s.ScrollTarget, 1)
	m.scrollPlaced = true
	m.indicator.Restore(s.Indicator)
	m.controller.Restore(s.Decode)
}
