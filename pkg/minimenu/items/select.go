package items

import "github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"

// Value is a finite, cyclic value domain for Select entries.
type Value[V any] interface {
	// Next returns the value that follows this one, wrapping at the end.
	Next() V
	// Marker is the text shown for the value.
	Marker() string
}

// Select cycles its value on every interaction and reports the new value
// through Convert.
type Select[E any, V Value[V]] struct {
	Label   string
	Detail  string
	Current V
	Convert func(V) E
}

// NewSelect creates a select entry starting at initial.
func NewSelect[E any, V Value[V]](title string, initial V, convert func(V) E) *Select[E, V] {
	return &Select[E, V]{Label: title, Current: initial, Convert: convert}
}

func (s *Select[E, V]) WithDetails(details string) *Select[E, V] {
	s.Detail = details
	return s
}

func (s *Select[E, V]) Title() string    { return s.Label }
func (s *Select[E, V]) Details() string  { return s.Detail }
func (s *Select[E, V]) Value() string    { return s.Current.Marker() }
func (s *Select[E, V]) Selectable() bool { return true }

func (s *Select[E, V]) Interact() E {
	s.Current = s.Current.Next()
	return s.Convert(s.Current)
}

// Bool is an on/off toggle.
type Bool bool

func (b Bool) Next() Bool { return !b }

func (b Bool) Marker() string {
	if b {
		return constants.MarkerChecked
	}
	return constants.MarkerUnchecked
}

// Enum cycles through a fixed list of names.
type Enum struct {
	Names []string
	Index int
}

// NewEnum starts at the first name equal to initial, or the first name.
func NewEnum(initial string, names ...string) Enum {
	e := Enum{Names: names}
	for i, n := range names {
		if n == initial {
			e.Index = i
			break
		}
	}
	return e
}

func (e Enum) Next() Enum {
	if len(e.Names) == 0 {
		return e
	}
	e.Index = (e.Index + 1) % len(e.Names)
	return e
}

func (e Enum) Marker() string {
	if e.Index < 0 || e.Index >= len(e.Names) {
		return ""
	}
	return e.Names[e.Index]
}

// Selected returns the current name.
func (e Enum) Selected() string {
	return e.Marker()
}
