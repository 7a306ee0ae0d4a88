package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors - adaptive for light/dark terminals
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#0F1689", Dark: "#818CF8"} // Helm indigo
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"} // Cyan

	ColorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

	ColorMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorText   = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
)

// Icons
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "•"
	IconRunning = "◉"
	IconBullet  = "▸"
	IconDash    = "─"
	IconHelm    = "⎈"
)

// Base styles
var (
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleInfo = lipgloss.NewStyle().
			Foreground(ColorInfo)

	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleSectionHeader = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder).
				MarginTop(1)

	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleIndent1 = lipgloss.NewStyle().PaddingLeft(2)
)

// CheckStyle returns the style for a doctor check outcome
func CheckStyle(passed, required bool) lipgloss.Style {
	switch {
	case passed:
		return StyleSuccess
	case required:
		return StyleError
	default:
		return StyleWarning
	}
}

// CheckIcon returns the icon for a doctor check outcome
func CheckIcon(passed, required bool) string {
	switch {
	case passed:
		return IconSuccess
	case required:
		return IconError
	default:
		return IconWarning
	}
}
