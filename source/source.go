// Package source feeds the console with alarm records. A source is the only
// boundary to the upstream alarm subsystem: records come back already
// formatted for display and are never mutated here.
package source

import (
	"context"

	"github.com/hjops/alarmtop/model"
)

// Source fetches the current alarm history from an upstream.
type Source interface {
	// Fetch returns the full history in upstream order (typically
	// reverse-chronological). Callers own filtering and pagination.
	Fetch(ctx context.Context) ([]model.AlarmRecord, error)
	// Name identifies the source in headers and logs.
	Name() string
}
