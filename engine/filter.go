// Package engine holds the alarm-history domain logic sitting between the
// sources and the presentation layers: filtering, pagination and severity
// aggregation. Everything here is pure and order-preserving.
package engine

import (
	"strings"

	"github.com/hjops/alarmtop/model"
)

// Apply returns the records matching the filter, preserving input order.
// The input slice is never mutated. Query matching is a case-insensitive
// substring match on the message.
func Apply(alarms []model.AlarmRecord, f model.Filter) []model.AlarmRecord {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]model.AlarmRecord, 0, len(alarms))
	for _, a := range alarms {
		if q != "" && !strings.Contains(strings.ToLower(a.Message), q) {
			continue
		}
		if f.Level != 0 && a.Level != f.Level {
			continue
		}
		switch f.Status {
		case model.StatusActive:
			if !a.Active() {
				continue
			}
		case model.StatusResolved:
			if a.Active() {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
