package minimenu

import (
	"image"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/animation"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/indicator"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/items"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/theme"
)

// DisplayMode selects what Draw renders.
type DisplayMode int

const (
	ModeList    DisplayMode = iota // Title bar and the item list
	ModeDetails                    // The selected item's long description
)

func (m DisplayMode) String() string {
	if m == ModeDetails {
		return "details"
	}
	return "list"
}

// layoutKey is what row geometry depends on. Geometry is recomputed when it
// changes.
type layoutKey struct {
	viewport   image.Rectangle
	lineHeight int
}

// Menu is one screen of selectable entries. I is the raw input type fed to
// Interact and E is the application event type items produce.
//
// A Menu is not safe for concurrent use. Call Interact with each input
// sample, then Update and Draw once per tick.
type Menu[I, E any] struct {
	title      string
	items      items.Collection[E]
	controller *interaction.Controller[I]
	indicator  *indicator.Indicator
	settings   Settings

	selected int
	mode     DisplayMode
	idle     uint16
	active   bool

	scroll       animation.Value
	scrollPlaced bool

	layout        layoutKey
	laidOut       bool
	lineHeight    int
	rowHeight     int
	rowWidth      int
	contentHeight int
	titleHeight   int
	listArea      image.Rectangle
	showScrollbar bool
}

// New builds a menu over collection, decoding raw input with adapter.
// It returns ErrEmptyMenu when the collection has no entries.
func New[I, E any](title string, collection items.Collection[E], adapter interaction.Adapter[I], settings Settings) (*Menu[I, E], error) {
	if collection == nil || collection.Count() == 0 {
		return nil, ErrEmptyMenu
	}
	if settings.Indicator == nil {
		settings.Indicator = indicator.Line{}
	}
	if settings.ScrollbarWidth < 1 {
		settings.ScrollbarWidth = DefaultSettings().ScrollbarWidth
	}

	m := &Menu[I, E]{
		title:      title,
		items:      collection,
		controller: interaction.NewController(adapter),
		indicator:  indicator.New(settings.Indicator, settings.IndicatorFrames),
		settings:   settings,
		scroll:     animation.New(0, 1),
		idle:       settings.IdleTimeout,
	}

	if settings.Resume != nil {
		m.resume(*settings.Resume)
	} else {
		m.selected = m.firstSelectable(settings.Selected)
	}

	internal.GetInternalLogger().Debug("Menu created",
		"title", title,
		"items", collection.Count(),
		"selected", m.selected)

	return m, nil
}

// firstSelectable clamps from into range and moves it to the nearest
// selectable entry, searching forward first.
func (m *Menu[I, E]) firstSelectable(from int) int {
	count := m.items.Count()
	if from < 0 {
		from = 0
	}
	if from >= count {
		from = count - 1
	}
	if m.items.SelectableAt(from) {
		return from
	}
	return interaction.NextSelectableIndex(interaction.JumpTo(from), from, count, m.items.SelectableAt)
}

func (m *Menu[I, E]) Title() string { return m.title }

// Items returns the collection the menu was built over.
func (m *Menu[I, E]) Items() items.Collection[E] { return m.items }

// Selected returns the index of the selected entry.
func (m *Menu[I, E]) Selected() int { return m.selected }

// Mode reports whether the list or the details view is active.
func (m *Menu[I, E]) Mode() DisplayMode { return m.mode }

// Input returns the decoded state of the most recent input sample.
func (m *Menu[I, E]) Input() interaction.InputState { return m.controller.Input() }

// Interact consumes one raw input sample. It returns the selected item's
// event and true when the sample committed a Select on a selectable entry.
// Navigation moves the selection, skipping entries that cannot be selected.
func (m *Menu[I, E]) Interact(raw I) (E, bool) {
	var none E

	action := m.controller.Update(raw)
	if !m.controller.Input().IsIdle() {
		m.active = true
	}

	switch {
	case action.Kind == interaction.ActionSelect:
		if !m.items.SelectableAt(m.selected) {
			return none, false
		}
		event := m.items.InteractWith(m.selected)
		internal.GetInternalLogger().Debug("Item selected",
			"index", m.selected,
			"title", m.items.TitleOf(m.selected),
			"value", m.items.ValueOf(m.selected))
		return event, true

	case action.IsNavigation():
		next := interaction.NextSelectableIndex(action, m.selected, m.items.Count(), m.items.SelectableAt)
		if next != m.selected {
			internal.GetInternalLogger().Debug("Selection changed",
				"action", action.Kind.String(),
				"from", m.selected,
				"to", next)
			m.selected = next
		}
	}

	return none, false
}

// Update advances the menu by one tick: the idle timer, the layout for
// viewport, the scroll and indicator targets, then both animations.
func (m *Menu[I, E]) Update(viewport image.Rectangle, metrics canvas.TextMetrics) {
	m.tickIdle()
	m.relayout(viewport, metrics)

	row := m.items.BoundsOf(m.selected)
	m.setScrollTarget(row)
	m.indicator.SetTarget(row.Min.Y)

	m.scroll.Update()
	m.indicator.Update(m.controller.Input())
}

func (m *Menu[I, E]) tickIdle() {
	active := m.active
	m.active = false

	if m.settings.IdleTimeout == 0 {
		m.setMode(ModeList)
		return
	}
	if active {
		m.idle = m.settings.IdleTimeout
		m.setMode(ModeList)
		return
	}
	if m.idle > 0 {
		m.idle--
		if m.idle == 0 {
			m.setMode(ModeDetails)
		}
	}
}

func (m *Menu[I, E]) setMode(mode DisplayMode) {
	if m.mode == mode {
		return
	}
	internal.GetInternalLogger().Debug("Display mode changed", "from", m.mode.String(), "to", mode.String())
	m.mode = mode
}

func (m *Menu[I, E]) relayout(viewport image.Rectangle, metrics canvas.TextMetrics) {
	key := layoutKey{viewport: viewport, lineHeight: metrics.LineHeight()}
	if m.laidOut && key == m.layout {
		return
	}

	m.lineHeight = key.lineHeight
	m.titleHeight = 0
	if m.title != "" {
		m.titleHeight = m.lineHeight + m.settings.TitleSpacing + 1
	}
	m.listArea = image.Rect(viewport.Min.X, viewport.Min.Y+m.titleHeight, viewport.Max.X, viewport.Max.Y)

	padding := m.indicator.Padding(m.lineHeight)
	m.rowHeight = m.lineHeight + padding.Vertical()

	m.rowWidth = m.listArea.Dx()
	m.showScrollbar = m.settings.Scrollbar == theme.ScrollbarAlways
	if m.showScrollbar {
		m.rowWidth -= m.settings.ScrollbarWidth
	}
	m.contentHeight = m.items.SetStyle(items.Layout{Metrics: metrics, Width: m.rowWidth, RowHeight: m.rowHeight}, 0)

	if m.settings.Scrollbar == theme.ScrollbarAuto && m.contentHeight > m.listArea.Dy() {
		m.showScrollbar = true
		m.rowWidth -= m.settings.ScrollbarWidth
		m.contentHeight = m.items.SetStyle(items.Layout{Metrics: metrics, Width: m.rowWidth, RowHeight: m.rowHeight}, 0)
	}

	m.scroll = animation.Restore(m.scroll.Current(), m.scroll.Target(), animation.StepFor(m.rowHeight, m.settings.ScrollFrames))
	m.indicator.Relayout(m.rowHeight)

	m.layout = key
	m.laidOut = true

	internal.GetInternalLogger().Debug("Menu laid out",
		"width", m.rowWidth,
		"row_height", m.rowHeight,
		"content_height", m.contentHeight,
		"scrollbar", m.showScrollbar)
}

// setScrollTarget scrolls the least distance that brings row into view.
func (m *Menu[I, E]) setScrollTarget(row image.Rectangle) {
	visible := m.listArea.Dy()
	target := m.scroll.Target()

	if row.Max.Y > target+visible {
		target = row.Max.Y - visible
	}
	if row.Min.Y < target {
		target = row.Min.Y
	}

	maxScroll := m.contentHeight - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	target = min(max(target, 0), maxScroll)

	if !m.scrollPlaced {
		m.scrollPlaced = true
		m.scroll.Jump(target)
		return
	}
	m.scroll.SetTarget(target)
}

// Reset returns the menu to its initial state: first selectable entry,
// list mode, cleared input, and no animation in flight.
func (m *Menu[I, E]) Reset() {
	m.selected = m.firstSelectable(m.settings.Selected)
	m.controller.Reset()
	m.mode = ModeList
	m.idle = m.settings.IdleTimeout
	m.active = false
	m.scroll = animation.New(0, 1)
	m.scrollPlaced = false
	m.indicator = indicator.New(m.settings.Indicator, m.settings.IndicatorFrames)
	m.laidOut = false
}
