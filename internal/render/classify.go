package render

import "strings"

// Mode is the rendering decision for one section content block.
type Mode int

const (
	Prose Mode = iota
	List
)

// Lines splits content on newlines and drops empty segments.
func Lines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Classify decides whether a content block renders as a bulleted list or
// flowing prose. The template authoring convention is that short
// newline-separated phrases without sentence punctuation are a list; a
// ". " substring anywhere marks prose. A single-line block is always
// prose.
func Classify(content string) Mode {
	if len(Lines(content)) > 1 && !strings.Contains(content, ". ") {
		return List
	}
	return Prose
}
