// Package items implements menu entries and the by-index protocol the engine
// uses to address a fixed, heterogeneous list of them.
//
// A Collection is built once from single items (One), homogeneous runs
// (Run) and links between collections (Link, List). Lookups walk the links,
// so their cost grows with the number of composed parts, not the number of
// items. The shape never changes after construction; only values inside
// items do.
package items

import (
	"fmt"
	"image"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
)

// Layout is the text style rows are laid out with. Changing it invalidates
// every cached row geometry.
type Layout struct {
	Metrics   canvas.TextMetrics
	Width     int
	RowHeight int
}

// Collection addresses an ordered set of menu entries by flat index.
// Every nth passed to an accessor must satisfy 0 <= nth < Count().
type Collection[E any] interface {
	Count() int
	BoundsOf(nth int) image.Rectangle
	TitleOf(nth int) string
	DetailsOf(nth int) string
	ValueOf(nth int) string
	IconOf(nth int) image.Image
	SelectableAt(nth int) bool
	InteractWith(nth int) E

	// SetStyle lays out the rows starting at top and returns the y
	// coordinate just below the last row.
	SetStyle(layout Layout, top int) int
}

// One adapts a single item to the Collection protocol.
type One[E any] struct {
	item   MenuItem[E]
	bounds image.Rectangle
}

// Single wraps item as a one-entry collection.
func Single[E any](item MenuItem[E]) *One[E] {
	return &One[E]{item: item}
}

func (o *One[E]) check(nth int) {
	if nth != 0 {
		panic(fmt.Sprintf("items: index %d out of range for single item %q", nth, o.item.Title()))
	}
}

func (o *One[E]) Count() int { return 1 }

func (o *One[E]) BoundsOf(nth int) image.Rectangle {
	o.check(nth)
	return o.bounds
}

func (o *One[E]) TitleOf(nth int) string {
	o.check(nth)
	return o.item.Title()
}

func (o *One[E]) DetailsOf(nth int) string {
	o.check(nth)
	return o.item.Details()
}

func (o *One[E]) ValueOf(nth int) string {
	o.check(nth)
	return o.item.Value()
}

func (o *One[E]) IconOf(nth int) image.Image {
	o.check(nth)
	return iconOf(o.item)
}

func (o *One[E]) SelectableAt(nth int) bool {
	o.check(nth)
	return o.item.Selectable()
}

func (o *One[E]) InteractWith(nth int) E {
	o.check(nth)
	return o.item.Interact()
}

func (o *One[E]) SetStyle(layout Layout, top int) int {
	o.bounds = image.Rect(0, top, layout.Width, top+layout.RowHeight)
	return o.bounds.Max.Y
}

// Run is a homogeneous slice of items addressed directly by index. The slice
// is borrowed: the caller keeps it alive and unresized while the menu uses it.
type Run[E any, T MenuItem[E]] struct {
	items     []T
	top       int
	width     int
	rowHeight int
}

// Slice wraps items as a collection.
func Slice[E any, T MenuItem[E]](items []T) *Run[E, T] {
	return &Run[E, T]{items: items}
}

func (r *Run[E, T]) Count() int { return len(r.items) }

func (r *Run[E, T]) BoundsOf(nth int) image.Rectangle {
	top := r.top + nth*r.rowHeight
	return image.Rect(0, top, r.width, top+r.rowHeight)
}

func (r *Run[E, T]) TitleOf(nth int) string     { return r.items[nth].Title() }
func (r *Run[E, T]) DetailsOf(nth int) string   { return r.items[nth].Details() }
func (r *Run[E, T]) ValueOf(nth int) string     { return r.items[nth].Value() }
func (r *Run[E, T]) IconOf(nth int) image.Image { return iconOf(r.items[nth]) }
func (r *Run[E, T]) SelectableAt(nth int) bool  { return r.items[nth].Selectable() }
func (r *Run[E, T]) InteractWith(nth int) E     { return r.items[nth].Interact() }

func (r *Run[E, T]) SetStyle(layout Layout, top int) int {
	r.top = top
	r.width = layout.Width
	r.rowHeight = layout.RowHeight
	return top + len(r.items)*layout.RowHeight
}

// Link is head followed by rest.
type Link[E any] struct {
	head Collection[E]
	rest Collection[E]
}

// Chain links two collections: head's entries first, then rest's.
func Chain[E any](head, rest Collection[E]) *Link[E] {
	return &Link[E]{head: head, rest: rest}
}

// List links collections in order. It panics when called with none.
func List[E any](parts ...Collection[E]) Collection[E] {
	if len(parts) == 0 {
		panic("items: List needs at least one collection")
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return Chain(parts[0], List(parts[1:]...))
}

// route resolves nth to the collection that owns it and the local index.
func (l *Link[E]) route(nth int) (Collection[E], int) {
	if n := l.head.Count(); nth >= n {
		return l.rest, nth - n
	}
	return l.head, nth
}

func (l *Link[E]) Count() int { return l.head.Count() + l.rest.Count() }

func (l *Link[E]) BoundsOf(nth int) image.Rectangle {
	c, i := l.route(nth)
	return c.BoundsOf(i)
}

func (l *Link[E]) TitleOf(nth int) string {
	c, i := l.route(nth)
	return c.TitleOf(i)
}

func (l *Link[E]) DetailsOf(nth int) string {
	c, i := l.route(nth)
	return c.DetailsOf(i)
}

func (l *Link[E]) ValueOf(nth int) string {
	c, i := l.route(nth)
	return c.ValueOf(i)
}

func (l *Link[E]) IconOf(nth int) image.Image {
	c, i := l.route(nth)
	return c.IconOf(i)
}

func (l *Link[E]) SelectableAt(nth int) bool {
	c, i := l.route(nth)
	return c.SelectableAt(i)
}

func (l *Link[E]) InteractWith(nth int) E {
	c, i := l.route(nth)
	return c.InteractWith(i)
}

func (l *Link[E]) SetStyle(layout Layout, top int) int {
	return l.rest.SetStyle(layout, l.head.SetStyle(layout, top))
}
