package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls rendering of the buffer view and the two panes.
type Style struct {
	Text               lipgloss.Style
	Misspelled         lipgloss.Style
	SelectedMisspelled lipgloss.Style

	PaneTitle    lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	Status       lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:               lipgloss.NewStyle(),
		Misspelled:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true),
		SelectedMisspelled: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Reverse(true),
		PaneTitle:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		ListItem:           lipgloss.NewStyle(),
		ListSelected:       lipgloss.NewStyle().Reverse(true),
		Status:             lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func normalizeStyle(s Style) Style {
	if reflect.DeepEqual(s, Style{}) {
		return DefaultStyle()
	}
	return s
}
