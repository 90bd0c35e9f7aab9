package tracker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keymap struct {
	quit key.Binding
}

var defaultKeymap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Style holds the lipgloss styles of the live view.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
}

// NewStyle returns the styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	main := lipgloss.Color("#1E1E2E")
	success := lipgloss.Color("#2E7D32")
	warning := lipgloss.Color("#C62828")

	if dark {
		main = lipgloss.Color("#F5F5F5")
		success = lipgloss.Color("#A6E3A1")
		warning = lipgloss.Color("#F38BA8")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7F849C")),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(success),
		Warning:   lipgloss.NewStyle().Foreground(warning),
	}
}
