package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaGreen     = "#98BB6C"
	kanagawaYellow    = "#FF9E3B"
	kanagawaRed       = "#FF5D62"
	kanagawaOrange    = "#FFA066"
	kanagawaCyan      = "#7E9CD8"
	kanagawaBlue      = "#7FB4CA"
	kanagawaViolet    = "#957FB8"
	kanagawaMutedText = "#727169"
	kanagawaBorder    = "#363646"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
}

// Theme holds the pre-configured styles shared by the CLI and log output.
type Theme struct {
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Italic lipgloss.Style

	// Special styles
	Accent lipgloss.Style
}

// DefaultTheme is the theme instance used across the flex-layout tools.
var DefaultTheme = newTheme(defaultColors())

func defaultColors() Colors {
	return Colors{
		Green:     lipgloss.Color(kanagawaGreen),
		Yellow:    lipgloss.Color(kanagawaYellow),
		Red:       lipgloss.Color(kanagawaRed),
		Orange:    lipgloss.Color(kanagawaOrange),
		Cyan:      lipgloss.Color(kanagawaCyan),
		Blue:      lipgloss.Color(kanagawaBlue),
		Violet:    lipgloss.Color(kanagawaViolet),
		MutedText: lipgloss.Color(kanagawaMutedText),
		Border:    lipgloss.Color(kanagawaBorder),
	}
}

func newTheme(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		// Text hierarchy: Bold → Normal → Muted
		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Italic: lipgloss.NewStyle().
			Italic(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet),
	}
}

// RenderStatus renders text with a status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}
