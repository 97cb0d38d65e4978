package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Mode
	}{
		{"newline separated phrases", "A\nB\nC", List},
		{"sentence punctuation forces prose", "This is. A sentence.\nWith lines.\nMore.", Prose},
		{"single line is prose", "Just one line without periods", Prose},
		{"single line with trailing newline", "Just one line\n", Prose},
		{"two phrases", "First phrase\nSecond phrase", List},
		{"period without space stays list", "Option 1: R135.00/month\nOption 2: R245.00/month", List},
		{"empty", "", Prose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.content))
		})
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, Lines("A\nB\nC"))
	assert.Equal(t, []string{"A", "B"}, Lines("A\n\nB\n"))
	assert.Nil(t, Lines(""))
}
