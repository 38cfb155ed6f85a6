package items

import (
	"image"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
)

// MenuItem is a single menu entry.
type MenuItem[E any] interface {
	// Title is the label drawn on the left of the row.
	Title() string
	// Details is the long description shown in the details view.
	Details() string
	// Value is the marker drawn right-aligned on the row.
	Value() string
	Selectable() bool
	// Interact is called when the entry is selected and returns the
	// application event for it.
	Interact() E
}

// Iconic is implemented by items that draw an icon before their value.
type Iconic interface {
	Icon() image.Image
}

func iconOf(item any) image.Image {
	if i, ok := item.(Iconic); ok {
		return i.Icon()
	}
	return nil
}

// Navigation returns the same event every time it is selected.
type Navigation[E any] struct {
	Label  string
	Detail string
	Marker string
	Event  E
	Image  image.Image
}

// NewNavigation creates a navigation entry with the default ">" marker.
func NewNavigation[E any](title string, event E) *Navigation[E] {
	return &Navigation[E]{Label: title, Marker: constants.MarkerNavigation, Event: event}
}

func (n *Navigation[E]) WithDetails(details string) *Navigation[E] {
	n.Detail = details
	return n
}

func (n *Navigation[E]) WithMarker(marker string) *Navigation[E] {
	n.Marker = marker
	return n
}

func (n *Navigation[E]) WithIcon(icon image.Image) *Navigation[E] {
	n.Image = icon
	return n
}

func (n *Navigation[E]) Title() string     { return n.Label }
func (n *Navigation[E]) Details() string   { return n.Detail }
func (n *Navigation[E]) Value() string     { return n.Marker }
func (n *Navigation[E]) Selectable() bool  { return true }
func (n *Navigation[E]) Interact() E       { return n.Event }
func (n *Navigation[E]) Icon() image.Image { return n.Image }

// Section is a non-selectable header that splits a list into groups.
type Section[E any] struct {
	Label string
}

func NewSection[E any](title string) *Section[E] {
	return &Section[E]{Label: title}
}

func (s *Section[E]) Title() string    { return s.Label }
func (s *Section[E]) Details() string  { return "" }
func (s *Section[E]) Value() string    { return "" }
func (s *Section[E]) Selectable() bool { return false }

// Interact is never called by the engine; it returns the zero event.
func (s *Section[E]) Interact() E {
	var zero E
	return zero
}
