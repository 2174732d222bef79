package bar

import "github.com/charmbracelet/lipgloss"

// Bar color palette - Catppuccin Mocha
const (
	ColorBg      = lipgloss.Color("#1e1e2e") // Base
	ColorSurface = lipgloss.Color("#45475a") // Surface1
	ColorText    = lipgloss.Color("#cdd6f4") // Text
	ColorMuted   = lipgloss.Color("#6c7086") // Overlay0

	ColorCPU     = lipgloss.Color("#89b4fa") // Blue
	ColorMemory  = lipgloss.Color("#a6e3a1") // Green
	ColorNetDown = lipgloss.Color("#89b4fa") // Blue
	ColorNetUp   = lipgloss.Color("#f38ba8") // Red
	ColorClock   = lipgloss.Color("#cba6f7") // Mauve
	ColorWarning = lipgloss.Color("#f9e2af") // Yellow
)

// Thresholds for metric severity coloring
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

var (
	BarStyle = lipgloss.NewStyle().
			Background(ColorBg)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	WidgetStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	WidgetSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1).
				Underline(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorSurface)

	StaleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Separator drawn between widgets.
const WidgetSeparator = "│"

// MetricColor returns the severity color for a 0-100 metric value.
func MetricColor(value float64) lipgloss.Color {
	switch {
	case value >= CriticalThreshold:
		return ColorNetUp
	case value >= WarningThreshold:
		return ColorWarning
	default:
		return ColorMemory
	}
}
