package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"item-checklist/internal/checklist"
	"item-checklist/pkg/stamp"
)

// SaveFunc persists the edited description.
type SaveFunc func(description string) error

// Model is an interactive checklist view over one description. Rows are
// addressed by their position among checklist lines.
type Model struct {
	desc    string
	rows    []checklist.Checkbox
	cursor  int
	stamper *stamp.Stamper
	now     func() time.Time
	save    SaveFunc

	adding bool
	input  textinput.Model

	dirty  bool
	status string
	width  int
}

type savedMsg struct{ err error }

// NewModel builds the view. A nil save disables the save key.
func NewModel(description string, stamper *stamp.Stamper, save SaveFunc) Model {
	in := textinput.New()
	in.Placeholder = "New checklist item"
	in.CharLimit = 1000
	in.Width = 40

	m := Model{
		desc:    description,
		stamper: stamper,
		now:     time.Now,
		save:    save,
		input:   in,
	}
	m.refresh()
	return m
}

// Description returns the current, possibly unsaved, description.
func (m Model) Description() string {
	return m.desc
}

// Dirty reports whether there are unsaved edits.
func (m Model) Dirty() bool {
	return m.dirty
}

func (m Model) Init() tea.Cmd {
	return nil
}

// setDescription replaces the description and re-derives the rows.
func (m *Model) setDescription(desc string) {
	if desc == m.desc {
		return
	}
	m.desc = desc
	m.dirty = true
	m.refresh()
}

func (m *Model) refresh() {
	m.rows = checklist.ParseCheckboxes(m.desc)
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m Model) saveCmd() tea.Cmd {
	if m.save == nil {
		return nil
	}
	desc, save := m.desc, m.save
	return func() tea.Msg {
		return savedMsg{err: save(desc)}
	}
}
