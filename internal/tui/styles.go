package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/taskdeck/internal/model"
)

// Color palette
var (
	// Priority colors
	HighColor   = lipgloss.Color("#FF6B6B") // Red
	MediumColor = lipgloss.Color("#FFE66D") // Yellow
	LowColor    = lipgloss.Color("#4ECDC4") // Blue

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Danger    = lipgloss.Color("#FF5555")
)

// Styles
var (
	ColumnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	ColumnFocusStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	ColumnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary)

	TaskItemStyle = lipgloss.NewStyle()

	TaskItemSelectedStyle = lipgloss.NewStyle().
				Background(Surface).
				Bold(true)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Strikethrough(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// PriorityStyle returns the style for a given priority
func PriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(HighColor).Bold(true)
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(MediumColor)
	}
	return lipgloss.NewStyle().Foreground(LowColor)
}

// PriorityBadge renders the short priority marker.
func PriorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return PriorityStyle(p).Render("!!")
	case model.PriorityMedium:
		return PriorityStyle(p).Render(" !")
	}
	return PriorityStyle(p).Render("  ")
}
