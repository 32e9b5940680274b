package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Italic(true)

	cellStyle = lipgloss.NewStyle().
			Width(4)

	freeStyle = cellStyle.
			Foreground(lipgloss.Color("230"))

	blockedStyle = cellStyle.
			Foreground(lipgloss.Color("241"))

	selectedStyle = cellStyle.
			Bold(true).
			Foreground(lipgloss.Color("220"))

	hintStyle = cellStyle.
			Bold(true).
			Foreground(lipgloss.Color("42"))

	emptyStyle = cellStyle.
			Foreground(lipgloss.Color("238"))
)
