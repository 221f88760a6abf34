package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Row styles
	FormatNameStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12)

	SelectedFormatNameStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	SelectedValueStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	EmptyValueStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	// Table border used by the convert --all output
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Input style
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Fehler: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
