package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestFileSourceFetch(t *testing.T) {
	body := `# alarm history export
{"level":5,"message":"Pump failure","triggered_at_full":"2024-01-01 10:00:00","triggered_time":"10:00:00"}

{"level":2,"message":"Reservoir low","resolved_time":"11:30:00"}
this line is not json
{"message":"no level at all"}
`
	p := filepath.Join(t.TempDir(), "history.jsonl")
	if err := os.WriteFile(p, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	src := NewFile(p, zerolog.Nop())
	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	// Comment, blank and malformed lines are skipped; good lines survive
	// in file order.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Message != "Pump failure" || records[0].Level != 5 {
		t.Errorf("first record = %+v", records[0])
	}
	if !records[0].Active() {
		t.Error("record without resolved_time should be active")
	}
	if records[1].Active() {
		t.Error("record with resolved_time should not be active")
	}
	if records[2].Level != 0 {
		t.Errorf("absent level should decode to 0, got %d", records[2].Level)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFile(filepath.Join(t.TempDir(), "nope.jsonl"), zerolog.Nop())
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
