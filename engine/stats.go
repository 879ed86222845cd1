package engine

import "github.com/hjops/alarmtop/model"

// Count aggregates per-severity totals for the overview stat cards. A record
// without a level counts as Info, same as the history renderer; levels
// outside 1..5 count as Unknown.
func Count(alarms []model.AlarmRecord) model.SeverityStats {
	var s model.SeverityStats
	for _, a := range alarms {
		s.Total++
		if a.Active() {
			s.Active++
		}

		level := a.Level
		if level == 0 {
			level = 1
		}
		switch level {
		case 5:
			s.Critical++
		case 4:
			s.High++
		case 3:
			s.Medium++
		case 2:
			s.Low++
		case 1:
			s.Info++
		default:
			s.Unknown++
		}
	}
	return s
}
