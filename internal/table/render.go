package table

import (
	"strings"
	"unicode/utf8"
)

// build lays the table out as text. It reads the column store and the
// presentation settings but never mutates them; String handles the
// caching around it.
func (t *Table) build() string {
	if len(t.columns) == 0 {
		return ""
	}

	// The label row, when present, is logical row zero of every
	// column and participates in width computation.
	cells := make([][]string, len(t.columns))
	for i, column := range t.columns {
		if t.labels != nil {
			cells[i] = append([]string{t.labels[i]}, column...)
		} else {
			cells[i] = append([]string(nil), column...)
		}
	}

	widths := make([]int, len(cells))
	for i, column := range cells {
		for _, cell := range column {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, column := range cells {
		for j, cell := range column {
			column[j] = alignCell(cell, widths[i], t.centered)
		}
	}

	// Transpose back into display rows. Equal column heights are an
	// invariant here, so plain indexing is safe.
	height := len(cells[0])
	display := make([][]string, height)
	for r := range display {
		row := make([]string, len(cells))
		for c := range cells {
			row[c] = cells[c][r]
		}
		display[r] = row
	}

	style := styles[t.style]
	pad := strings.Repeat(" ", t.padding)

	horizontals := make([]string, len(widths))
	for i, w := range widths {
		horizontals[i] = strings.Repeat(string(style.Horizontal), w+2*t.padding)
	}

	v := string(style.Vertical)
	lines := make([]string, 0, height+3)
	lines = append(lines, borderLine(horizontals, style.TopLeft, style.TopMid, style.TopRight))
	for r, row := range display {
		lines = append(lines, v+pad+strings.Join(row, pad+v+pad)+pad+v)
		if r == 0 && t.labels != nil {
			lines = append(lines, borderLine(horizontals, style.MidLeft, style.Cross, style.MidRight))
		}
	}
	lines = append(lines, borderLine(horizontals, style.BottomLeft, style.BottomMid, style.BottomRight))

	return strings.Join(lines, "\n")
}

func borderLine(horizontals []string, left, mid, right rune) string {
	return string(left) + strings.Join(horizontals, string(mid)) + string(right)
}

// alignCell pads s with spaces to the given rune width. Centering
// leaves the extra space on the right when the gap is odd.
func alignCell(s string, width int, centered bool) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	if centered {
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	}
	return s + strings.Repeat(" ", gap)
}
