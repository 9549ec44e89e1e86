package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	TitleBar      *lipgloss.Style
	TitleActive   *lipgloss.Style
	Subtitle      *lipgloss.Style
	PromptChar    *lipgloss.Style
	PromptInvalid *lipgloss.Style
	ChoiceGlyph   *lipgloss.Style
	ChoiceName    *lipgloss.Style
	Help          *lipgloss.Style
	Status        *lipgloss.Style
	Error         *lipgloss.Style
	CellHint      *lipgloss.Style
	CellGlyph     *lipgloss.Style
	CellDesc      *lipgloss.Style
	CellFill      *lipgloss.Style
	SelectedHint  *lipgloss.Style
	SelectedGlyph *lipgloss.Style
	SelectedDesc  *lipgloss.Style
	SelectedFill  *lipgloss.Style
}

// selectedBG is the row highlight behind the current candidate in name mode.
const selectedBG = "238"

var defaultStyles = Styles{
	TitleBar: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	TitleActive: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	PromptChar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	PromptInvalid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	ChoiceGlyph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	ChoiceName: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	CellHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	CellGlyph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	CellDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	CellFill: ptr(
		lipgloss.NewStyle(),
	),
	SelectedHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(lipgloss.Color(selectedBG)),
	),
	SelectedGlyph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(selectedBG)),
	),
	SelectedDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color(selectedBG)),
	),
	SelectedFill: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color(selectedBG)),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
