package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText   lipgloss.Color = "#cdd6f4"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorBorder lipgloss.Color = "#585b70"
	colorAccent lipgloss.Color = "#89b4fa"
	colorDotOff lipgloss.Color = "#7f849c"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	slideStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	slideHoverStyle = slideStyle.
			BorderForeground(colorAccent)

	controlStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dotActiveStyle = lipgloss.NewStyle().Foreground(colorAccent)
	dotStyle       = lipgloss.NewStyle().Foreground(colorDotOff)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
