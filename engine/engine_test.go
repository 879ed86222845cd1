package engine

import (
	"testing"

	"github.com/hjops/alarmtop/model"
)

var sample = []model.AlarmRecord{
	{Level: 5, Message: "Pump failure at intake", TriggeredAtFull: "2024-01-01 10:00:00"},
	{Level: 3, Message: "Turbidity above limit", ResolvedTime: "10:30:00"},
	{Level: 1, Message: "Backwash cycle started", ResolvedTime: "11:00:00"},
	{Level: 5, Message: "Chlorine dosing PUMP offline"},
	{Level: 2, Message: "Reservoir level low"},
}

func TestApply(t *testing.T) {
	cases := []struct {
		name   string
		filter model.Filter
		want   int
	}{
		{"empty_filter_matches_all", model.Filter{}, 5},
		{"query_case_insensitive", model.Filter{Query: "pump"}, 2},
		{"query_trimmed", model.Filter{Query: "  pump  "}, 2},
		{"query_no_match", model.Filter{Query: "flux capacitor"}, 0},
		{"level", model.Filter{Level: 5}, 2},
		{"active_only", model.Filter{Status: model.StatusActive}, 3},
		{"resolved_only", model.Filter{Status: model.StatusResolved}, 2},
		{"combined", model.Filter{Query: "pump", Level: 5, Status: model.StatusActive}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Apply(sample, c.filter)
			if len(got) != c.want {
				t.Fatalf("Apply() returned %d records, want %d", len(got), c.want)
			}
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(sample, model.Filter{Level: 5})
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].Message != sample[0].Message || got[1].Message != sample[3].Message {
		t.Fatalf("filter reordered records: %q, %q", got[0].Message, got[1].Message)
	}
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		wantPage   int
		wantLen    int
		wantPages  int
	}{
		{"first_page", 1, 2, 1, 2, 3},
		{"last_page_partial", 3, 2, 3, 1, 3},
		{"page_clamped_high", 99, 2, 3, 1, 3},
		{"page_clamped_low", 0, 2, 1, 2, 3},
		{"size_defaulted", 1, 0, 1, 5, 1},
		{"size_larger_than_input", 1, 50, 1, 5, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Paginate(sample, c.page, c.size)
			if p.Page != c.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, c.wantPage)
			}
			if len(p.Alarms) != c.wantLen {
				t.Errorf("len(Alarms) = %d, want %d", len(p.Alarms), c.wantLen)
			}
			if p.TotalPages != c.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, c.wantPages)
			}
			if p.TotalItems != len(sample) {
				t.Errorf("TotalItems = %d, want %d", p.TotalItems, len(sample))
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate(nil, 1, 20)
	if len(p.Alarms) != 0 || p.Page != 1 || p.TotalPages != 1 || p.TotalItems != 0 {
		t.Fatalf("unexpected empty page: %+v", p)
	}
}

func TestShowingRange(t *testing.T) {
	p := Paginate(sample, 2, 2)
	first, last := ShowingRange(p)
	if first != 3 || last != 4 {
		t.Fatalf("ShowingRange = %d-%d, want 3-4", first, last)
	}

	first, last = ShowingRange(Paginate(nil, 1, 2))
	if first != 0 || last != 0 {
		t.Fatalf("ShowingRange on empty page = %d-%d, want 0-0", first, last)
	}
}

func TestCount(t *testing.T) {
	in := append([]model.AlarmRecord{}, sample...)
	in = append(in,
		model.AlarmRecord{Message: "no level"},    // counts as Info
		model.AlarmRecord{Level: 9, Message: "x"}, // counts as Unknown
	)

	s := Count(in)
	if s.Total != 7 {
		t.Errorf("Total = %d, want 7", s.Total)
	}
	if s.Active != 5 {
		t.Errorf("Active = %d, want 5", s.Active)
	}
	if s.Critical != 2 || s.High != 0 || s.Medium != 1 || s.Low != 1 || s.Info != 2 || s.Unknown != 1 {
		t.Errorf("unexpected severity counts: %+v", s)
	}
}
