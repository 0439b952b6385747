package tui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"item-checklist/internal/checklist"
	"item-checklist/internal/description"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.dirty = false
		m.status = "saved"
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKey(msg)
		}
		return m.handleMainKey(msg)
	}

	return m, nil
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case " ", "enter", "x":
		if len(m.rows) == 0 {
			return m, nil
		}
		next, err := checklist.ToggleLine(m.desc, m.cursor)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.setDescription(next)

	case "r":
		m.setDescription(checklist.Reset(m.desc))

	case "a":
		m.adding = true
		return m, m.input.Focus()

	case "t":
		if m.stamper == nil {
			return m, nil
		}
		end := utf8.RuneCountInString(m.desc)
		m.setDescription(description.InsertAt(m.desc, end, m.stamper.Stamp(m.now())))

	case "s":
		if m.save == nil {
			m.status = "read-only: no file to save to"
			return m, nil
		}
		return m, m.saveCmd()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case "enter":
		text := m.input.Value()
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.setDescription(checklist.AddItem(m.desc, text))
		m.cursor = max(len(m.rows)-1, 0)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
