package theme

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/indicator"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#008080")
	if err != nil {
		t.Fatalf("ParseHex() error = %v", err)
	}
	if c != HexToColor(0x008080) {
		t.Errorf("ParseHex() = %v", c)
	}
	if got := FormatHex(c); got != "#008080" {
		t.Errorf("FormatHex() = %q", got)
	}

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) expected error", bad)
		}
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	doc := `
indicator = "animated_triangle"
idle_timeout = 300
title_align = "center"
scrollbar = "never"

[colors]
selection_fill = "#FF0000"

[animation]
scroll_frames = 8
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	def := Default()
	if s.Indicator != "animated_triangle" || s.IdleTimeout != 300 {
		t.Errorf("Parse() indicator=%q idle=%d", s.Indicator, s.IdleTimeout)
	}
	if s.TitleAlign != constants.TextAlignCenter || s.Scrollbar != ScrollbarNever {
		t.Errorf("Parse() align=%v scrollbar=%v", s.TitleAlign, s.Scrollbar)
	}
	if s.Theme.SelectionFillColor != HexToColor(0xFF0000) {
		t.Errorf("selection fill = %v", s.Theme.SelectionFillColor)
	}
	if s.Theme.TextColor != def.Theme.TextColor {
		t.Errorf("text color should keep its default, got %v", s.Theme.TextColor)
	}
	if s.ScrollFrames != 8 || s.IndicatorFrames != def.IndicatorFrames {
		t.Errorf("frames = %d/%d", s.ScrollFrames, s.IndicatorFrames)
	}
	if s.PageSize != def.PageSize {
		t.Errorf("page size = %d", s.PageSize)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse([]byte("[colors]\ntext = \"white\"\n"))
	if err == nil || !strings.Contains(err.Error(), "colors.text") {
		t.Errorf("bad color error = %v", err)
	}

	_, err = Parse([]byte(`indicator = "sparkle"`))
	if !errors.Is(err, indicator.ErrUnknownStyle) {
		t.Errorf("bad indicator error = %v", err)
	}

	if _, err := Parse([]byte("indicator = ")); err == nil {
		t.Error("malformed TOML expected error")
	}
}

func TestEncodeParses(t *testing.T) {
	s := Default()
	s.Indicator = "border"
	s.IdleTimeout = 120
	s.Scrollbar = ScrollbarAlways
	s.FontPath = "/fonts/menu.ttf"

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error = %v\n%s", err, buf.String())
	}
	if got != s {
		t.Errorf("Parse(Encode()) = %+v, want %+v", got, s)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/style.toml"); err == nil {
		t.Error("Load() expected error")
	}
}

func TestParseScrollbarMode(t *testing.T) {
	for _, m := range []ScrollbarMode{ScrollbarAuto, ScrollbarAlways, ScrollbarNever} {
		if got := ParseScrollbarMode(m.String()); got != m {
			t.Errorf("ParseScrollbarMode(%q) = %v", m.String(), got)
		}
	}
	if ParseScrollbarMode("sometimes") != ScrollbarAuto {
		t.Error("unknown mode should be auto")
	}
}
