package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hjops/alarmtop/model"
)

const (
	historyPath = "/api/v0/alarms/history"

	// maxHistoryBody caps the response size; history endpoints paginate,
	// so anything near this is a misbehaving upstream.
	maxHistoryBody = 16 << 20
)

// HTTPSource fetches alarm history from an upstream alarm-management API.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewHTTP creates a source for the given base URL, e.g.
// "http://scada.local:13001".
func NewHTTP(baseURL string, timeout time.Duration, log zerolog.Logger) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (s *HTTPSource) Name() string {
	return s.baseURL
}

// historyEnvelope is the wrapped response shape; some upstreams return a bare
// array instead and both are accepted.
type historyEnvelope struct {
	Alarms []model.AlarmRecord `json:"alarms"`
}

// Fetch GETs the alarm history. Unknown fields in the payload are ignored;
// missing fields decode to zero values and degrade at render time.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.AlarmRecord, error) {
	url := s.baseURL + historyPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxHistoryBody))
	if err != nil {
		return nil, fmt.Errorf("read history body: %w", err)
	}

	var records []model.AlarmRecord
	if err := json.Unmarshal(body, &records); err == nil {
		s.log.Debug().Int("count", len(records)).Str("url", url).Msg("fetched alarm history")
		return records, nil
	}

	var env historyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode history from %s: %w", url, err)
	}
	s.log.Debug().Int("count", len(env.Alarms)).Str("url", url).Msg("fetched alarm history")
	return env.Alarms, nil
}
