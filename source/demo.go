package source

import (
	"context"

	"github.com/hjops/alarmtop/model"
)

// DemoSource serves a fixed set of sample records so the console runs
// without an upstream configured.
type DemoSource struct{}

func (DemoSource) Name() string { return "demo" }

func (DemoSource) Fetch(ctx context.Context) ([]model.AlarmRecord, error) {
	return []model.AlarmRecord{
		{Level: 5, Message: "Intake pump P-101 failure", TriggeredAtFull: "2024-01-15 08:42:10", TriggeredTime: "08:42:10"},
		{Level: 4, Message: "Chlorine residual below setpoint", TriggeredAtFull: "2024-01-15 08:30:55", TriggeredTime: "08:30:55"},
		{Level: 3, Message: "Turbidity above limit at filter bank B", TriggeredAtFull: "2024-01-15 07:58:21", TriggeredTime: "07:58:21", ResolvedTime: "08:15:02"},
		{Level: 2, Message: "Reservoir level approaching low mark", TriggeredAtFull: "2024-01-15 07:12:48", TriggeredTime: "07:12:48", ResolvedTime: "07:40:31"},
		{Level: 1, Message: "Backwash cycle started on filter bank A", TriggeredAtFull: "2024-01-15 06:00:00", TriggeredTime: "06:00:00", ResolvedTime: "06:24:17"},
		{Level: 5, Message: "Communication lost with RTU-7 (booster station)", TriggeredAtFull: "2024-01-14 23:51:33", TriggeredTime: "23:51:33", ResolvedTime: "00:04:12"},
		{Level: 3, Message: "pH drifting outside control band", TriggeredAtFull: "2024-01-14 22:17:09", TriggeredTime: "22:17:09", ResolvedTime: "22:45:50"},
		{Level: 1, Message: "Operator login from HMI-2", TriggeredAtFull: "2024-01-14 21:00:41", TriggeredTime: "21:00:41", ResolvedTime: "21:00:41"},
	}, nil
}
