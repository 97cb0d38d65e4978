package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charWidth is a flat metric: every character is size points wide.
func charWidth(s string, size float64) float64 {
	return float64(len(s)) * size
}

func TestWrapText(t *testing.T) {
	lines := WrapText("aa bb cc dd ee", 50, 10, charWidth)
	assert.Equal(t, []string{"aa bb", "cc dd", "ee"}, lines)
}

func TestWrapTextPreservesWordOrder(t *testing.T) {
	in := "one two three four five six seven"
	lines := WrapText(in, 100, 10, charWidth)
	assert.Equal(t, in, strings.Join(lines, " "))
}

func TestWrapTextRespectsMaxWidth(t *testing.T) {
	lines := WrapText(declarationText, fullW, declarationSize, textWidth)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, textWidth(line, declarationSize), fullW, "%q", line)
	}
}

func TestWrapTextOverlongWordGetsOwnLine(t *testing.T) {
	lines := WrapText("short incomprehensibilities end", 80, 10, charWidth)
	assert.Equal(t, []string{"short", "incomprehensibilities", "end"}, lines)
}

func TestWrapTextEmpty(t *testing.T) {
	assert.Empty(t, WrapText("", 100, 10, charWidth))
	assert.Empty(t, WrapText("   \n  ", 100, 10, charWidth))
}
