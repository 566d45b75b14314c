package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusTone returns the palette color for a safety status. Unknown values are red.
func StatusTone(s domain.SafetyStatus) lipgloss.Color {
	switch s {
	case domain.StatusGreen:
		return ColorGreen
	case domain.StatusYellow:
		return ColorYellow
	default:
		return ColorRed
	}
}

// StatusColor returns the text style for a safety status.
func StatusColor(s domain.SafetyStatus) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusTone(s))
}

// StatusIndicator returns a colored status such as "● YELLOW".
func StatusIndicator(s domain.SafetyStatus) string {
	if s == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return StatusColor(s).Render("● " + string(s))
}

// SeverityBadge returns a colored severity marker for a violation.
func SeverityBadge(s domain.Severity) string {
	if s.Blocking() {
		return StyleRed.Render("✖ " + string(s))
	}
	return StyleYellow.Render("▲ " + string(s))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
