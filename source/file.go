package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hjops/alarmtop/model"
)

// FileSource reads alarm history from a JSONL export: one record per line,
// blank lines and #-comments ignored.
type FileSource struct {
	path string
	log  zerolog.Logger
}

// NewFile creates a source for a JSONL history export.
func NewFile(path string, log zerolog.Logger) *FileSource {
	return &FileSource{path: path, log: log}
}

func (s *FileSource) Name() string {
	return s.path
}

// Fetch reads the whole file. Malformed lines are skipped and counted, not
// fatal: a partially corrupt export still renders its good rows.
func (s *FileSource) Fetch(ctx context.Context) ([]model.AlarmRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var (
		records []model.AlarmRecord
		skipped int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var rec model.AlarmRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	if skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Str("path", s.path).Msg("skipped malformed history lines")
	}
	return records, nil
}
