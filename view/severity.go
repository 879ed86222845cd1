package view

// Badge is a small colored label indicating categorical status. Color is an
// abstract token (red, orange, yellow, blue, gray); each frontend maps tokens
// onto its own palette.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// severityBadges maps severity level to its display badge, 5 highest.
var severityBadges = map[int]Badge{
	5: {"Critical", "red"},
	4: {"High", "orange"},
	3: {"Medium", "yellow"},
	2: {"Low", "blue"},
	1: {"Info", "gray"},
}

var unknownBadge = Badge{"Unknown", "gray"}

// Classify returns the display badge for a severity level. It is total over
// all integers: any level outside 1..5 gets the Unknown badge.
func Classify(level int) Badge {
	if b, ok := severityBadges[level]; ok {
		return b
	}
	return unknownBadge
}
