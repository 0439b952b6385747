package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"item-checklist/pkg/stamp"
)

// Run opens the interactive view on description and blocks until the user
// quits. It returns the final description.
func Run(description string, stamper *stamp.Stamper, save SaveFunc) (string, error) {
	final, err := tea.NewProgram(NewModel(description, stamper, save), tea.WithAltScreen()).Run()
	if err != nil {
		return description, err
	}
	if m, ok := final.(Model); ok {
		return m.Description(), nil
	}
	return description, nil
}
