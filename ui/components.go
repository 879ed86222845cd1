package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hjops/alarmtop/view"
)

// cellsPerUnit converts the view layer's abstract column widths (~CSS
// pixels) into terminal cells.
const cellsPerUnit = 8

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// padRight pads (or rune-truncates) a plain string to width. Alarm messages
// are frequently multibyte, so byte slicing is not safe here.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

// truncate shortens s to max runes, ending with an ellipsis if shortened.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// colWidth returns the terminal width of a column; 0 means flex.
func colWidth(c view.Column) int {
	if c.Width == 0 {
		return 0
	}
	w := c.Width / cellsPerUnit
	if w < len(c.Title)+1 {
		w = len(c.Title) + 1
	}
	return w
}

// renderTable paints a declarative table description. firstCol is the index
// of the leftmost visible column, which is how horizontal overflow scrolls
// in a terminal: whole columns shift out on h/l instead of clipping.
// selected is the highlighted row index, -1 for none; the highlight is the
// terminal's stand-in for the description's hover hint.
func renderTable(tbl view.Table, width, selected, firstCol int) string {
	if firstCol < 0 {
		firstCol = 0
	}
	if firstCol >= len(tbl.Columns) {
		firstCol = len(tbl.Columns) - 1
	}
	cols := tbl.Columns[firstCol:]

	// Flex columns share whatever the fixed ones leave over.
	const indent, gap = 2, 2
	fixed := indent
	flexCount := 0
	for _, c := range cols {
		if w := colWidth(c); w > 0 {
			fixed += w + gap
		} else {
			flexCount++
		}
	}
	flexW := 0
	if flexCount > 0 {
		flexW = (width - fixed - gap*flexCount) / flexCount
		if flexW < 12 {
			flexW = 12
		}
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		if widths[i] = colWidth(c); widths[i] == 0 {
			widths[i] = flexW
		}
	}

	var sb strings.Builder

	// Header
	sb.WriteString("  ")
	for i, c := range cols {
		sb.WriteString(headerStyle.Render(padRight(strings.ToUpper(c.Title), widths[i])))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")
	sep := width - 2
	if sep < 0 {
		sep = 0
	}
	sb.WriteString(dimStyle.Render("  " + strings.Repeat("─", sep)))
	sb.WriteString("\n")

	for ri, row := range tbl.Rows {
		var line strings.Builder
		line.WriteString("  ")
		for ci, cell := range row.Cells[firstCol:] {
			w := widths[ci]
			col := cols[ci]

			var rendered string
			switch {
			case cell.Badge != nil:
				rendered = styledPad(badgeStyle(cell.Badge.Color).Render(cell.Badge.Label), w)
			case col.Truncate:
				rendered = valueStyle.Render(padRight(truncate(cell.Text, w), w))
			case col.Muted:
				rendered = dimStyle.Render(padRight(cell.Text, w))
			default:
				rendered = valueStyle.Render(padRight(cell.Text, w))
			}
			line.WriteString(rendered)
			line.WriteString("  ")
		}

		if ri == selected {
			sb.WriteString(selectedStyle.Render(line.String()))
		} else {
			sb.WriteString(line.String())
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
