package minimenu

import (
	"strings"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
)

// wrapText breaks text into lines no wider than maxWidth. Explicit newlines
// are kept and a single word wider than maxWidth gets a line of its own.
func wrapText(metrics canvas.TextMetrics, text string, maxWidth int) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if metrics.MeasureText(candidate) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// fitText shortens text with a trailing ellipsis until it is no wider than
// maxWidth.
func fitText(metrics canvas.TextMetrics, text string, maxWidth int) string {
	if metrics.MeasureText(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + constants.Ellipsis
		if metrics.MeasureText(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
