package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Title   Style
	Muted   Style
	Notice  Style
	Error   Style
	Banner  Style
	Spinner Style

	Label        Style
	FocusedLabel Style

	Card      Style
	CardTitle Style
	CardValue Style
	CardMeta  Style

	Panel Style
	Chart Style
	Bar   Style
	Help  Style
}

// Style is an alias to keep the struct above readable.
type Style = lipgloss.Style

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("130")).Padding(0, 1),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),

		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),

		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(24),
		CardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CardValue: lipgloss.NewStyle().Bold(true),
		CardMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Panel: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Chart: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
