package minimenu

import (
	"image"
	"image/color"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/animation"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
)

// columnGap separates the title, icon and value columns of a row.
const columnGap = 2

// minThumbHeight keeps the scrollbar thumb visible on long lists.
const minThumbHeight = 2

// Draw renders the current frame. Errors from the canvas are returned
// unchanged and leave the menu's state as Update left it.
func (m *Menu[I, E]) Draw(c canvas.Canvas) error {
	if !m.laidOut {
		m.relayout(c.Bounds(), c)
	}

	if err := c.FillRect(m.layout.viewport, m.settings.Theme.BackgroundColor); err != nil {
		return err
	}

	if m.mode == ModeDetails {
		if details := m.settings.translate(m.items.DetailsOf(m.selected)); details != "" {
			return m.drawDetails(c, details)
		}
	}

	if err := m.drawTitle(c, m.settings.translate(m.title)); err != nil {
		return err
	}
	if err := m.drawList(c); err != nil {
		return err
	}
	if m.showScrollbar {
		return m.drawScrollbar(c)
	}
	return nil
}

// drawTitle draws title and its separator at the top of the viewport. An
// empty title draws nothing.
func (m *Menu[I, E]) drawTitle(c canvas.Canvas, title string) error {
	if title == "" {
		return nil
	}

	viewport := m.layout.viewport
	text := fitText(c, title, viewport.Dx())
	width := c.MeasureText(text)

	x := viewport.Min.X
	switch m.settings.TitleAlign {
	case constants.TextAlignCenter:
		x += (viewport.Dx() - width) / 2
	case constants.TextAlignRight:
		x = canvas.AlignRight(viewport, width)
	}

	titleColor := m.settings.Theme.TitleColor
	if err := c.Text(text, image.Pt(x, viewport.Min.Y), titleColor); err != nil {
		return err
	}

	y := viewport.Min.Y + m.lineHeight + m.settings.TitleSpacing
	return c.Line(image.Pt(viewport.Min.X, y), image.Pt(viewport.Max.X-1, y), titleColor)
}

func (m *Menu[I, E]) drawList(c canvas.Canvas) error {
	list := c.Clip(m.listArea)
	origin := image.Pt(m.listArea.Min.X, m.listArea.Min.Y-m.scroll.Current())

	if err := m.drawRows(list, origin, m.settings.Theme.TextColor); err != nil {
		return err
	}

	offset := m.indicator.Offset()
	selection := image.Rect(0, offset, m.rowWidth, offset+m.rowHeight).Add(origin)

	return m.indicator.Draw(list, selection, m.controller.Input(), m.settings.Theme.SelectionFillColor,
		func(inverted canvas.Canvas) error {
			return m.drawRows(inverted, origin, m.settings.Theme.SelectedTextColor)
		})
}

// drawRows draws every row that intersects the canvas bounds.
func (m *Menu[I, E]) drawRows(c canvas.Canvas, origin image.Point, col color.Color) error {
	visible := c.Bounds()
	for i := 0; i < m.items.Count(); i++ {
		row := m.items.BoundsOf(i).Add(origin)
		if !row.Overlaps(visible) {
			continue
		}
		if err := m.drawRow(c, i, row, col); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu[I, E]) drawRow(c canvas.Canvas, nth int, row image.Rectangle, col color.Color) error {
	inner := m.indicator.Padding(m.lineHeight).Shrink(row)
	y := canvas.CenterY(inner, m.lineHeight)
	right := inner.Max.X

	if value := m.items.ValueOf(nth); value != "" {
		right -= c.MeasureText(value)
		if err := c.Text(value, image.Pt(right, y), col); err != nil {
			return err
		}
		right -= columnGap
	}

	if icon := m.items.IconOf(nth); icon != nil {
		size := icon.Bounds().Size()
		right -= size.X
		if err := c.DrawImage(icon, image.Pt(right, canvas.CenterY(inner, size.Y))); err != nil {
			return err
		}
		right -= columnGap
	}

	title := fitText(c, m.settings.translate(m.items.TitleOf(nth)), right-inner.Min.X)
	if title == "" {
		return nil
	}
	return c.Text(title, image.Pt(inner.Min.X, y), col)
}

func (m *Menu[I, E]) drawScrollbar(c canvas.Canvas) error {
	track := image.Rect(m.listArea.Max.X-m.settings.ScrollbarWidth, m.listArea.Min.Y, m.listArea.Max.X, m.listArea.Max.Y)
	visible := track.Dy()

	thumbHeight, thumbTop := visible, 0
	if m.contentHeight > visible {
		thumbHeight = max(visible*visible/m.contentHeight, minThumbHeight)
		thumbTop = animation.Interpolate(m.scroll.Current(), 0, m.contentHeight-visible, 0, visible-thumbHeight)
	}

	thumb := image.Rect(track.Min.X, track.Min.Y+thumbTop, track.Max.X, track.Min.Y+thumbTop+thumbHeight)
	return c.FillRect(thumb, m.settings.Theme.ScrollbarColor)
}

// drawDetails shows the selected item's title and its word-wrapped
// description. Lines that do not fit below the viewport are dropped.
func (m *Menu[I, E]) drawDetails(c canvas.Canvas, details string) error {
	viewport := m.layout.viewport
	title := m.settings.translate(m.items.TitleOf(m.selected))
	if err := m.drawTitle(c, title); err != nil {
		return err
	}

	y := viewport.Min.Y
	if title != "" {
		y += m.lineHeight + m.settings.TitleSpacing + 1 + m.settings.TitleSpacing
	}

	body := c.Clip(viewport)
	for _, line := range wrapText(c, details, viewport.Dx()) {
		if y+m.lineHeight > viewport.Max.Y {
			break
		}
		if line != "" {
			if err := body.Text(line, image.Pt(viewport.Min.X, y), m.settings.Theme.TextColor); err != nil {
				return err
			}
		}
		y += m.lineHeight
	}
	return nil
}
