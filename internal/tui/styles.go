package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorHeader    = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#7D56F4"}
	ColorLabel     = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#A0A0A0"}
	ColorValue     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#EDEDED"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ColorSubtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	PageButtonStyle = lipgloss.NewStyle().
			Foreground(ColorValue).
			Background(ColorSubtle).
			Padding(0, 1)

	ActivePageStyle = PageButtonStyle.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorHeader).
			Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorSubtle).
				BorderBottom(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(ColorHeader)

	CheckedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
)
