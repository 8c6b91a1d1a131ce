package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/charter-terminal/internal/models"
)

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorSecondary = lipgloss.Color("#87CEEB") // Sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for errors and Sundays
	colorWarning   = lipgloss.Color("#FFD93D") // Yellow for full boats
	colorSuccess   = lipgloss.Color("#6BCF7F") // Green for open seats
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue
	colorSaturday  = lipgloss.Color("#5B9BFF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// Filter panel
	filterBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	activeFilterBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	chipOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(colorSecondary).
			Padding(0, 1)

	chipOffStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// Date group headers
	dateHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginTop(1)

	sundayHeaderStyle   = dateHeaderStyle.Foreground(colorDanger)
	saturdayHeaderStyle = dateHeaderStyle.Foreground(colorSaturday)

	// Status badges
	statusAvailableStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	statusFullStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	statusClosedStyle = lipgloss.NewStyle().
				Foreground(colorDanger)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// statusStyle picks the badge style for a listing status
func statusStyle(s models.Status) lipgloss.Style {
	switch s {
	case models.StatusAvailable:
		return statusAvailableStyle
	case models.StatusFull:
		return statusFullStyle
	case models.StatusClosed:
		return statusClosedStyle
	default:
		return mutedStyle
	}
}

// dateGroupStyle colors Sundays red and Saturdays blue
func dateGroupStyle(g models.DateGroup) lipgloss.Style {
	switch {
	case g.IsSunday:
		return sundayHeaderStyle
	case g.IsWeekend:
		return saturdayHeaderStyle
	default:
		return dateHeaderStyle
	}
}
