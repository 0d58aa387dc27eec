package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a grid of cell texts. Rows may differ in length; missing cells
// render empty.
type Table struct {
	Rows   [][]string
	Header bool // first row is a header and gets a heavy separator
}

// Layout represents the computed layout of the table.
type Layout struct {
	table *Table

	cols      int
	colWidths []int // content width for each column
}

// Render renders the table to ASCII string
func (t *Table) Render() string {
	layout := t.buildLayout()
	if layout.cols == 0 {
		return ""
	}
	return layout.render()
}

func (t *Table) buildLayout() *Layout {
	layout := &Layout{table: t}

	for _, row := range t.Rows {
		if len(row) > layout.cols {
			layout.cols = len(row)
		}
	}
	layout.colWidths = make([]int, layout.cols)
	layout.computeColWidths()

	return layout
}

func (l *Layout) computeColWidths() {
	for i := range l.colWidths {
		l.colWidths[i] = 1
	}

	for _, row := range l.table.Rows {
		for col, text := range row {
			if width := displayWidth(text); width > l.colWidths[col] {
				l.colWidths[col] = width
			}
		}
	}
}

func (l *Layout) render() string {
	var sb strings.Builder

	sb.WriteString(l.renderBorderLine('-'))
	sb.WriteString("\n")

	for rowIdx, row := range l.table.Rows {
		sb.WriteString(l.renderContentLine(row))
		sb.WriteString("\n")

		if rowIdx == 0 && l.table.Header && len(l.table.Rows) > 1 {
			sb.WriteString(l.renderBorderLine('='))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(l.renderBorderLine('-'))
	sb.WriteString("\n")

	return sb.String()
}

// renderBorderLine renders a horizontal border line drawn with fill.
func (l *Layout) renderBorderLine(fill rune) string {
	var sb strings.Builder

	sb.WriteString("+")
	for _, width := range l.colWidths {
		sb.WriteString(strings.Repeat(string(fill), width+2))
		sb.WriteString("+")
	}

	return sb.String()
}

// renderContentLine renders one table row, padding each cell to its column width.
func (l *Layout) renderContentLine(row []string) string {
	var sb strings.Builder

	sb.WriteString("|")
	for colIdx, width := range l.colWidths {
		var text string
		if colIdx < len(row) {
			text = row[colIdx]
		}

		padding := width - displayWidth(text)
		if padding < 0 {
			padding = 0
		}

		sb.WriteString(" ")
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", padding))
		sb.WriteString(" |")
	}

	return sb.String()
}

// displayWidth calculates the display width of a string using go-runewidth,
// so CJK characters count as two columns and combining marks as none.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
