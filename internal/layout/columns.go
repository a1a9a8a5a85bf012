package layout

import (
	"strconv"
	"strings"
)

const (
	// Indent is the left margin of every listing row.
	Indent = 4
	// ColumnGap is added to the widest cell to get the column width.
	ColumnGap = 2
)

// Item is one numbered entry of a listing.
type Item struct {
	Number int
	Label  string
}

// Numbered numbers labels from 1 in their given order.
func Numbered(labels []string) []Item {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{Number: i + 1, Label: label}
	}
	return items
}

// Columns lays labels out as "<n>. <label>" cells in a row-major grid that
// fills width.
func Columns(labels []string, width int) []string {
	return Grid(Numbered(labels), width)
}

// Grid lays out pre-numbered items. Column width is the widest visible cell
// plus ColumnGap; there is always at least one column.
func Grid(items []Item, width int) []string {
	if len(items) == 0 {
		return nil
	}
	cells := make([]string, len(items))
	cellWidth := 0
	for i, item := range items {
		cells[i] = strconv.Itoa(item.Number) + ". " + item.Label
		if w := VisibleLen(cells[i]); w > cellWidth {
			cellWidth = w
		}
	}
	cellWidth += ColumnGap
	cols := max(1, width/cellWidth)

	indent := strings.Repeat(" ", Indent)
	rows := make([]string, 0, (len(cells)+cols-1)/cols)
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		var b strings.Builder
		b.WriteString(indent)
		for _, cell := range cells[start:end] {
			b.WriteString(PadRight(cell, cellWidth, " "))
		}
		rows = append(rows, b.String())
	}
	return rows
}
