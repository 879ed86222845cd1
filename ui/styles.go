package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hjops/alarmtop/config"
)

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorOrange = lipgloss.Color("#FFB86C")
	colorBlue   = lipgloss.Color("#6272FF")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorPanel  = lipgloss.Color("#44475A")
	colorBg     = lipgloss.Color("#282A36")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle    = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle     = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(colorGreen)
	headerStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
	orangeStyle   = lipgloss.NewStyle().Foreground(colorOrange)
)

// badgeStyles maps badge color tokens to solid-badge styles: colored
// background, dark text, matching the web frontend's filled variant.
var badgeStyles = map[string]lipgloss.Style{
	"red":    lipgloss.NewStyle().Background(colorRed).Foreground(colorBg).Bold(true).Padding(0, 1),
	"orange": lipgloss.NewStyle().Background(colorOrange).Foreground(colorBg).Bold(true).Padding(0, 1),
	"yellow": lipgloss.NewStyle().Background(colorYellow).Foreground(colorBg).Padding(0, 1),
	"blue":   lipgloss.NewStyle().Background(colorBlue).Foreground(colorWhite).Padding(0, 1),
	"gray":   lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite).Padding(0, 1),
}

// badgeStyle returns the style for a badge color token, gray for tokens this
// palette does not know.
func badgeStyle(token string) lipgloss.Style {
	if st, ok := badgeStyles[token]; ok {
		return st
	}
	return badgeStyles["gray"]
}

// tokenStyle returns a foreground style for a badge color token, used where
// a solid badge would be too loud (stat cards, filter bar).
func tokenStyle(token string) lipgloss.Style {
	switch token {
	case "red":
		return critStyle
	case "orange":
		return orangeStyle
	case "yellow":
		return warnStyle
	case "blue":
		return lipgloss.NewStyle().Foreground(colorBlue)
	default:
		return dimStyle
	}
}

// applyTheme overrides the ok/warn/crit colors from the config theme.
func applyTheme(t config.ThemeConfig) {
	if t.Normal != "" {
		okStyle = okStyle.Foreground(lipgloss.Color(t.Normal))
	}
	if t.Warning != "" {
		warnStyle = warnStyle.Foreground(lipgloss.Color(t.Warning))
	}
	if t.Critical != "" {
		crit := lipgloss.Color(t.Critical)
		critStyle = critStyle.Foreground(crit)
		badgeStyles["red"] = badgeStyles["red"].Background(crit)
	}
}
