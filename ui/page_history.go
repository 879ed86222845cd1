package ui

import (
	"fmt"
	"strings"

	"github.com/hjops/alarmtop/engine"
	"github.com/hjops/alarmtop/model"
	"github.com/hjops/alarmtop/view"
)

// renderHistoryPage paints the alarm history: filter bar, table, pagination
// footer. The table itself is the declarative description from the view
// layer; this function only decides terminal geometry.
func renderHistoryPage(p model.HistoryPage, f model.Filter, searching bool, searchBuf string, selected, firstCol, width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("ALARM HISTORY  (%d alarms)", p.TotalItems)))
	sb.WriteString("\n\n")

	sb.WriteString(renderFilterBar(f, searching, searchBuf))
	sb.WriteString("\n\n")

	tbl := view.HistoryTable(p.Alarms)
	if len(tbl.Rows) == 0 {
		sb.WriteString(renderTable(tbl, width, -1, firstCol))
		sb.WriteString(dimStyle.Render("  No alarms match the current filter"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(renderTable(tbl, width, selected, firstCol))
	}

	sb.WriteString("\n")
	sb.WriteString(renderPagination(p))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("  j/k: row  n/p: page  h/l: columns  /: search  s: severity  a: status"))

	return sb.String()
}

func renderFilterBar(f model.Filter, searching bool, searchBuf string) string {
	var sb strings.Builder
	sb.WriteString("  ")

	sb.WriteString(labelStyle.Render("Search: "))
	switch {
	case searching:
		sb.WriteString(valueStyle.Render(searchBuf) + warnStyle.Render("█"))
	case f.Query != "":
		sb.WriteString(valueStyle.Render(f.Query))
	default:
		sb.WriteString(dimStyle.Render("(none)"))
	}

	sb.WriteString(labelStyle.Render("   Severity: "))
	if f.Level == 0 {
		sb.WriteString(valueStyle.Render("All"))
	} else {
		b := view.Classify(f.Level)
		sb.WriteString(tokenStyle(b.Color).Render(b.Label))
	}

	sb.WriteString(labelStyle.Render("   Status: "))
	switch f.Status {
	case model.StatusActive:
		sb.WriteString(critStyle.Render("Active"))
	case model.StatusResolved:
		sb.WriteString(okStyle.Render("Resolved"))
	default:
		sb.WriteString(valueStyle.Render("All"))
	}

	return sb.String()
}

// renderPagination mirrors the web dashboard's footer:
// "Showing 21-40 of 97" on the left, "◀ 2 / 5 ▶" on the right.
func renderPagination(p model.HistoryPage) string {
	first, last := engine.ShowingRange(p)

	left := dimStyle.Render(fmt.Sprintf("  Showing %d-%d of %d", first, last, p.TotalItems))

	prev := "◀"
	if p.Page <= 1 {
		prev = dimStyle.Render(prev)
	} else {
		prev = valueStyle.Render(prev)
	}
	next := "▶"
	if p.Page >= p.TotalPages {
		next = dimStyle.Render(next)
	} else {
		next = valueStyle.Render(next)
	}

	right := fmt.Sprintf("%s %s %s", prev,
		valueStyle.Render(fmt.Sprintf("%d / %d", p.Page, p.TotalPages)), next)

	return left + "    " + right
}
