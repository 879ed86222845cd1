package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hjops/alarmtop/model"
)

// renderOverviewPage paints the severity stat cards.
func renderOverviewPage(stats model.SeverityStats, width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("ALARM OVERVIEW"))
	sb.WriteString("\n\n")

	cards := []struct {
		title string
		count int
		token string
	}{
		{"Critical", stats.Critical, "red"},
		{"High", stats.High, "orange"},
		{"Medium", stats.Medium, "yellow"},
		{"Low", stats.Low, "blue"},
		{"Info", stats.Info, "gray"},
	}

	rendered := make([]string, 0, len(cards)+1)
	for _, c := range cards {
		body := fmt.Sprintf("%s\n%s",
			tokenStyle(c.token).Render(fmt.Sprintf("%4d", c.count)),
			labelStyle.Render(c.title))
		rendered = append(rendered, panelStyle.Render(body))
	}
	if stats.Unknown > 0 {
		body := fmt.Sprintf("%s\n%s",
			dimStyle.Render(fmt.Sprintf("%4d", stats.Unknown)),
			labelStyle.Render("Unknown"))
		rendered = append(rendered, panelStyle.Render(body))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if lipgloss.Width(row) > width {
		// Narrow terminal: stack the cards instead
		row = lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	sb.WriteString(row)
	sb.WriteString("\n\n")

	active := okStyle.Render("0")
	if stats.Active > 0 {
		active = critStyle.Render(fmt.Sprintf("%d", stats.Active))
	}
	sb.WriteString(fmt.Sprintf("  %s %s    %s %s\n",
		labelStyle.Render("Total:"), valueStyle.Render(fmt.Sprintf("%d", stats.Total)),
		labelStyle.Render("Active:"), active))

	return sb.String()
}
