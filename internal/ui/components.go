package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SmallBanner renders a one-line banner
func SmallBanner() string {
	return StyleTitle.Render(IconHelm+" charthub") + StyleMuted.Render(" - Find and install Helm charts from Artifact Hub")
}

// Header renders a section header
func Header(title string) string {
	return StyleSectionHeader.Render(title)
}

// Success renders a success message
func Success(format string, a ...interface{}) string {
	return StyleSuccess.Render(IconSuccess+" ") + fmt.Sprintf(format, a...)
}

// Warning renders a warning message
func Warning(format string, a ...interface{}) string {
	return StyleWarning.Render(IconWarning+" ") + fmt.Sprintf(format, a...)
}

// Info renders an info message
func Info(format string, a ...interface{}) string {
	return StyleInfo.Render(IconInfo+" ") + fmt.Sprintf(format, a...)
}

// Step renders a step/progress item
func Step(format string, a ...interface{}) string {
	return StyleIndent1.Render(StyleMuted.Render(IconBullet+" ") + fmt.Sprintf(format, a...))
}

// Muted renders muted text
func Muted(format string, a ...interface{}) string {
	return StyleMuted.Render(fmt.Sprintf(format, a...))
}

// Box renders content in a bordered box with an optional title
func Box(title, content string) string {
	if title == "" {
		return StyleBox.Render(content)
	}
	return StyleBox.Render(StyleTitle.Render(title) + "\n" + content)
}

// KeyValue renders a key-value pair with an aligned key column
func KeyValue(key, value string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(16)
	return keyStyle.Render(key+":") + " " + value
}

// CheckLine renders one doctor check result
func CheckLine(passed, required bool, name, message string) string {
	icon := CheckStyle(passed, required).Render(CheckIcon(passed, required))
	label := lipgloss.NewStyle().Width(20).Render(name)
	return icon + " " + label + " " + message
}

// Divider renders a horizontal divider
func Divider() string {
	return StyleMuted.Render(strings.Repeat(IconDash, 60))
}

// TruncateWithEllipsis shortens text to maxLen runes
func TruncateWithEllipsis(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// WrapText wraps text at word boundaries to the given width
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+len(word)+1 > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
