package pdf

import "strings"

// WidthFunc reports the rendered width of s at the given font size.
type WidthFunc func(s string, size float64) float64

// WrapText greedily packs words into lines no wider than maxWidth:
// words accumulate until adding the next one would exceed the budget,
// then the line is flushed. Deterministic for a fixed metric.
func WrapText(text string, maxWidth, size float64, width WidthFunc) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if width(candidate, size) > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
