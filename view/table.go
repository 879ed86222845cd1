// Package view projects alarm records into declarative table descriptions.
// The descriptions carry layout and styling hints only; painting is left to
// whichever frontend consumes them (the TUI, or a web client via -serve).
package view

import "github.com/hjops/alarmtop/model"

// Column describes one table column. Width is in UI units (roughly CSS
// pixels); zero width means the column flexes to fill the remaining space.
type Column struct {
	Title    string `json:"title"`
	Width    int    `json:"width,omitempty"`
	Mono     bool   `json:"mono,omitempty"`
	Muted    bool   `json:"muted,omitempty"`
	Truncate bool   `json:"truncate,omitempty"` // single line, ellipsis on overflow
}

// Cell is one rendered cell: plain text, or a badge when Badge is set.
type Cell struct {
	Text  string `json:"text,omitempty"`
	Badge *Badge `json:"badge,omitempty"`
}

// Row is one table row. Hover requests a background highlight on pointer
// hover; it is a presentation hint only and emits no events.
type Row struct {
	Cells []Cell `json:"cells"`
	Hover bool   `json:"hover,omitempty"`
}

// Table is a complete table description. FullWidth asks the frontend to fill
// its container; ScrollX asks it to scroll horizontal overflow instead of
// wrapping or clipping columns.
type Table struct {
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
	FullWidth bool     `json:"full_width"`
	ScrollX   bool     `json:"scroll_x"`
}

func historyColumns() []Column {
	return []Column{
		{Title: "Time", Width: 180, Mono: true},
		{Title: "Severity", Width: 100},
		{Title: "Message", Truncate: true},
		{Title: "Active Time", Width: 120, Mono: true, Muted: true},
		{Title: "Inactive Time", Width: 120, Mono: true, Muted: true},
	}
}

// HistoryTable projects alarm records into the five-column history table.
// Rows come out in input order; nothing is sorted, filtered or mutated, and
// calling it twice with the same input yields an identical description.
// Absent fields degrade per cell rather than failing the row: a zero Level
// renders as Info (level 1), a missing resolved time renders the "-"
// placeholder that marks a still-active alarm.
func HistoryTable(alarms []model.AlarmRecord) Table {
	rows := make([]Row, 0, len(alarms))
	for _, a := range alarms {
		level := a.Level
		if level == 0 {
			level = 1
		}
		badge := Classify(level)

		resolved := a.ResolvedTime
		if resolved == "" {
			resolved = "-"
		}

		rows = append(rows, Row{
			Hover: true,
			Cells: []Cell{
				{Text: a.TriggeredAtFull},
				{Badge: &badge},
				{Text: a.Message},
				{Text: a.TriggeredTime},
				{Text: resolved},
			},
		})
	}

	return Table{
		Columns:   historyColumns(),
		Rows:      rows,
		FullWidth: true,
		ScrollX:   true,
	}
}
