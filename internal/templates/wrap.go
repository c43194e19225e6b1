package templates

import (
	"strings"
	"unicode/utf8"
)

// Wrap packs the words of text greedily into lines. The first line closes at
// firstWidth runes to leave room for the item label, the rest at restWidth.
// Continuation lines are prefixed with marker so they stay inside the quote.
func Wrap(text string, firstWidth, restWidth int, marker string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if !strings.Contains(text, "\n") && utf8.RuneCountInString(text) <= firstWidth {
		return text
	}

	words := strings.Fields(text)
	lines := make([]string, 0, 2)
	limit := firstWidth

	current := words[0]
	width := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		n := utf8.RuneCountInString(word)
		if width+1+n <= limit {
			current += " " + word
			width += 1 + n
			continue
		}

		lines = append(lines, current)
		limit = restWidth
		current, width = word, n
	}
	lines = append(lines, current)

	return strings.Join(lines, "\n"+marker)
}
