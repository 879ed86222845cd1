package model

// AlarmRecord is one row of the upstream alarm history. Every display field
// arrives pre-formatted from the alarm subsystem; this tool never parses or
// reformats timestamps. Absent fields decode to their zero value and the
// presentation layer substitutes placeholders.
type AlarmRecord struct {
	Level           int    `json:"level,omitempty"`
	Message         string `json:"message,omitempty"`
	TriggeredAtFull string `json:"triggered_at_full,omitempty"`
	TriggeredTime   string `json:"triggered_time,omitempty"`
	ResolvedTime    string `json:"resolved_time,omitempty"`
}

// Active reports whether the alarm has not yet cleared.
func (a AlarmRecord) Active() bool {
	return a.ResolvedTime == ""
}

// Status selects which alarm lifecycle states a filter admits.
type Status string

const (
	StatusAll      Status = "all"
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
)

// Filter narrows an alarm list. The zero value matches everything.
type Filter struct {
	Query  string `json:"query,omitempty"`
	Level  int    `json:"level,omitempty"`  // 0 = any severity
	Status Status `json:"status,omitempty"` // "" = all
}

// HistoryPage is one page of filtered history plus its page metadata.
// Pages are 1-indexed.
type HistoryPage struct {
	Alarms     []AlarmRecord `json:"alarms"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalItems int           `json:"total_items"`
	TotalPages int           `json:"total_pages"`
}

// SeverityStats aggregates history counts for the overview cards.
type SeverityStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Info     int `json:"info"`
	Unknown  int `json:"unknown"`
}
