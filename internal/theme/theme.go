package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the simulator.
type Styles struct {
	Header        *lipgloss.Style
	Section       *lipgloss.Style
	SectionTitle  *lipgloss.Style
	Item          *lipgloss.Style
	FocusedItem   *lipgloss.Style
	HintGlyph     *lipgloss.Style
	HintLabel     *lipgloss.Style
	Notice        *lipgloss.Style
	Roster        *lipgloss.Style
	RosterWarning *lipgloss.Style
	SearchPrompt  *lipgloss.Style
	Error         *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SectionTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	HintGlyph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	HintLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Roster: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	RosterWarning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
