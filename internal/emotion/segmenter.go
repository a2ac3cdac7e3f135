package emotion

import (
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)

// SplitSentences breaks transcript text into sentence-like units for
// classifier input. Newlines are flattened to spaces and the text is
// split after terminal punctuation followed by whitespace. No
// language-aware boundary detection is attempted; auto-generated
// captions rarely reward anything smarter.
func SplitSentences(text string) []string {
	flat := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if flat == "" {
		return nil
	}

	marked := sentenceBoundary.ReplaceAllString(flat, "$1\x00")
	parts := strings.Split(marked, "\x00")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
