// Package ui implements the interactive charm browser: a filter bar over a
// table of charms, with an inline editor for adding and changing charms.
package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the browser
type Styles struct {
	Title      lipgloss.Style
	Box        lipgloss.Style
	FocusedBox lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Table      table.Styles
}

// DefaultStyles returns styles that read on light and dark terminals
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	border := lipgloss.AdaptiveColor{Light: "#dce0e5", Dark: "#2a3850"}
	muted := lipgloss.AdaptiveColor{Light: "#6a737d", Dark: "#8b949e"}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#3b5998")).
		Bold(false)

	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		FocusedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Label:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Table:  ts,
	}
}
