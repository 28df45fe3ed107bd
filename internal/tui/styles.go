package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive color palette for both dark and light terminals.
// Format: AdaptiveColor{Light, Dark}
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "63", Dark: "63"}   // muted indigo
	colorSubtle = lipgloss.AdaptiveColor{Light: "243", Dark: "241"} // gray
	colorText   = lipgloss.AdaptiveColor{Light: "235", Dark: "252"} // near-white on dark
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "203"} // error
	colorCyan   = lipgloss.AdaptiveColor{Light: "37", Dark: "75"}   // values
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	normalRowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			MarginTop(1)
)
