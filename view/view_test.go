package view

import (
	"reflect"
	"testing"

	"github.com/hjops/alarmtop/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		level     int
		wantLabel string
		wantColor string
	}{
		{"critical", 5, "Critical", "red"},
		{"high", 4, "High", "orange"},
		{"medium", 3, "Medium", "yellow"},
		{"low", 2, "Low", "blue"},
		{"info", 1, "Info", "gray"},

		// Anything outside 1..5 is Unknown
		{"zero", 0, "Unknown", "gray"},
		{"six", 6, "Unknown", "gray"},
		{"negative", -1, "Unknown", "gray"},
		{"large", 999, "Unknown", "gray"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := Classify(c.level)
			if b.Label != c.wantLabel || b.Color != c.wantColor {
				t.Fatalf("Classify(%d) = (%q, %q), want (%q, %q)",
					c.level, b.Label, b.Color, c.wantLabel, c.wantColor)
			}
		})
	}
}

func TestHistoryTableHeader(t *testing.T) {
	tbl := HistoryTable(nil)

	if len(tbl.Rows) != 0 {
		t.Fatalf("expected 0 rows for empty input, got %d", len(tbl.Rows))
	}

	wantTitles := []string{"Time", "Severity", "Message", "Active Time", "Inactive Time"}
	if len(tbl.Columns) != len(wantTitles) {
		t.Fatalf("expected %d columns, got %d", len(wantTitles), len(tbl.Columns))
	}
	for i, want := range wantTitles {
		if tbl.Columns[i].Title != want {
			t.Errorf("column %d title = %q, want %q", i, tbl.Columns[i].Title, want)
		}
	}

	if !tbl.FullWidth || !tbl.ScrollX {
		t.Errorf("expected full-width, horizontally scrollable table, got FullWidth=%v ScrollX=%v",
			tbl.FullWidth, tbl.ScrollX)
	}
	if !tbl.Columns[2].Truncate {
		t.Error("message column should carry the truncate hint")
	}
	if tbl.Columns[2].Width != 0 {
		t.Errorf("message column should flex, got fixed width %d", tbl.Columns[2].Width)
	}
	for _, i := range []int{0, 3, 4} {
		if !tbl.Columns[i].Mono {
			t.Errorf("column %q should be monospaced", tbl.Columns[i].Title)
		}
	}
	for _, i := range []int{3, 4} {
		if !tbl.Columns[i].Muted {
			t.Errorf("column %q should be muted", tbl.Columns[i].Title)
		}
	}
}

func TestHistoryTableSingleRecord(t *testing.T) {
	tbl := HistoryTable([]model.AlarmRecord{{
		Level:           5,
		Message:         "Pump failure",
		TriggeredAtFull: "2024-01-01 10:00:00",
		TriggeredTime:   "10:00:00",
		ResolvedTime:    "",
	}})

	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	row := tbl.Rows[0]
	if len(row.Cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(row.Cells))
	}
	if !row.Hover {
		t.Error("row should carry the hover highlight hint")
	}

	if got := row.Cells[0].Text; got != "2024-01-01 10:00:00" {
		t.Errorf("time cell = %q", got)
	}
	b := row.Cells[1].Badge
	if b == nil || b.Label != "Critical" || b.Color != "red" {
		t.Errorf("severity badge = %+v, want Critical/red", b)
	}
	if got := row.Cells[2].Text; got != "Pump failure" {
		t.Errorf("message cell = %q", got)
	}
	if got := row.Cells[3].Text; got != "10:00:00" {
		t.Errorf("active time cell = %q", got)
	}
	// Never-resolved alarms get a dash, not blank text.
	if got := row.Cells[4].Text; got != "-" {
		t.Errorf("inactive time cell = %q, want \"-\"", got)
	}
}

func TestHistoryTablePreservesOrder(t *testing.T) {
	a := model.AlarmRecord{Message: "newer", TriggeredAtFull: "2024-01-02 00:00:00"}
	b := model.AlarmRecord{Message: "older", TriggeredAtFull: "2024-01-01 00:00:00"}

	tbl := HistoryTable([]model.AlarmRecord{a, b})
	if tbl.Rows[0].Cells[2].Text != "newer" || tbl.Rows[1].Cells[2].Text != "older" {
		t.Fatalf("rows out of input order: %q, %q",
			tbl.Rows[0].Cells[2].Text, tbl.Rows[1].Cells[2].Text)
	}

	// Reversed input reverses the rows: the renderer does not sort.
	tbl = HistoryTable([]model.AlarmRecord{b, a})
	if tbl.Rows[0].Cells[2].Text != "older" {
		t.Fatal("renderer sorted its input")
	}
}

func TestHistoryTableMissingFields(t *testing.T) {
	tbl := HistoryTable([]model.AlarmRecord{{}})

	row := tbl.Rows[0]
	b := row.Cells[1].Badge
	if b == nil || b.Label != "Info" || b.Color != "gray" {
		t.Errorf("missing level should default to Info/gray, got %+v", b)
	}
	if row.Cells[0].Text != "" || row.Cells[2].Text != "" || row.Cells[3].Text != "" {
		t.Error("missing text fields should render empty, not fail")
	}
	if row.Cells[4].Text != "-" {
		t.Errorf("missing resolved time should render %q, got %q", "-", row.Cells[4].Text)
	}
}

func TestHistoryTableResolvedLiteral(t *testing.T) {
	tbl := HistoryTable([]model.AlarmRecord{{
		Level:        3,
		ResolvedTime: "11:30:00",
	}})
	if got := tbl.Rows[0].Cells[4].Text; got != "11:30:00" {
		t.Fatalf("resolved time should render verbatim, got %q", got)
	}
}

func TestHistoryTableIdempotent(t *testing.T) {
	in := []model.AlarmRecord{
		{Level: 5, Message: "Pump failure", TriggeredAtFull: "2024-01-01 10:00:00", TriggeredTime: "10:00:00"},
		{Level: 2, Message: "Filter pressure low", ResolvedTime: "11:30:00"},
		{Level: 42, Message: "out of range"},
	}
	if !reflect.DeepEqual(HistoryTable(in), HistoryTable(in)) {
		t.Fatal("rendering the same input twice produced different tables")
	}
}
