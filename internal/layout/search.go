package layout

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matchSpans returns the byte ranges of label that equal keyword under
// Unicode lower-case folding. Matches do not overlap.
func matchSpans(label, keyword string) [][2]int {
	if keyword == "" {
		return nil
	}
	lower := cases.Lower(language.Und)
	needle := lower.String(keyword)
	n := len([]rune(keyword))

	// offsets[i] is the byte offset of rune i; the extra entry marks the end.
	offsets := make([]int, 0, len(label)+1)
	for i := range label {
		offsets = append(offsets, i)
	}
	runes := len(offsets)
	offsets = append(offsets, len(label))

	var spans [][2]int
	for i := 0; i+n <= runes; {
		start, end := offsets[i], offsets[i+n]
		if lower.String(label[start:end]) == needle {
			spans = append(spans, [2]int{start, end})
			i += n
			continue
		}
		i++
	}
	return spans
}

// Filter returns the labels containing keyword, compared case-insensitively.
// Each match keeps its 1-based position in labels.
func Filter(keyword string, labels []string) []Item {
	var items []Item
	for i, label := range labels {
		if keyword == "" || len(matchSpans(label, keyword)) > 0 {
			items = append(items, Item{Number: i + 1, Label: label})
		}
	}
	return items
}

// Highlight passes every case-insensitive occurrence of keyword in label
// through paint. An empty keyword or a nil paint leaves label untouched.
func Highlight(label, keyword string, paint func(string) string) string {
	if keyword == "" || paint == nil {
		return label
	}
	spans := matchSpans(label, keyword)
	if len(spans) == 0 {
		return label
	}
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(label[last:sp[0]])
		b.WriteString(paint(label[sp[0]:sp[1]]))
		last = sp[1]
	}
	b.WriteString(label[last:])
	return b.String()
}

// Search filters labels by keyword, highlights the matches with paint and
// lays them out as a grid. It reports false, with no rows, when nothing
// matched.
func Search(keyword string, labels []string, width int, paint func(string) string) ([]string, bool) {
	items := Filter(keyword, labels)
	if len(items) == 0 {
		return nil, false
	}
	for i := range items {
		items[i].Label = Highlight(items[i].Label, keyword, paint)
	}
	return Grid(items, width), true
}
