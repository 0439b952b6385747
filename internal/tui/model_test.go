package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"item-checklist/pkg/stamp"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestToggleAndMove(t *testing.T) {
	m := NewModel("hello\n- [ ] a\nworld\n- [ ] b", nil, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.Description(); got != "hello\n- [x] a\nworld\n- [ ] b" {
		t.Fatalf("unexpected description after toggle: %q", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Description(); got != "hello\n- [x] a\nworld\n- [x] b" {
		t.Fatalf("unexpected description after second toggle: %q", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor should stop at the last row, got %d", m.cursor)
	}
	if !m.Dirty() {
		t.Errorf("expected dirty after edits")
	}
}

func TestReset(t *testing.T) {
	m := NewModel("- [x] a\n- [ ] b\n- [x] c", nil, nil)
	m = press(t, m, runes("r"))
	if got := m.Description(); got != "- [ ] a\n- [ ] b\n- [ ] c" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want string
	}{
		{
			name: "Enter adds",
			keys: []tea.Msg{runes("a"), runes("buy milk"), tea.KeyMsg{Type: tea.KeyEnter}},
			want: "notes\n\n- [ ] buy milk",
		},
		{
			name: "Esc cancels",
			keys: []tea.Msg{runes("a"), runes("buy milk"), tea.KeyMsg{Type: tea.KeyEsc}},
			want: "notes",
		},
		{
			name: "Blank input ignored",
			keys: []tea.Msg{runes("a"), runes("  "), tea.KeyMsg{Type: tea.KeyEnter}},
			want: "notes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, NewModel("notes", nil, nil), tt.keys...)
			if got := m.Description(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if m.adding {
				t.Errorf("input should be closed")
			}
		})
	}
}

func TestAddMovesCursorToNewRow(t *testing.T) {
	m := NewModel("- [ ] a\n- [ ] b", nil, nil)
	m = press(t, m, runes("a"), runes("c"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.Description(); got != "- [ ] a\n- [ ] b\n- [x] c" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestTimestamp(t *testing.T) {
	stamper, err := stamp.New("UTC", "")
	if err != nil {
		t.Fatalf("stamp.New: %v", err)
	}
	m := NewModel("due ", stamper, nil)
	m.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }

	m = press(t, m, runes("t"))
	if got := m.Description(); got != "due 2024-05-01 15:30" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestSave(t *testing.T) {
	var saved string
	m := NewModel("- [ ] a", nil, func(d string) error {
		saved = d
		return nil
	})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	next, cmd := m.Update(runes("s"))
	if cmd == nil {
		t.Fatalf("expected a save command")
	}
	m = press(t, next.(Model), cmd())
	if saved != "- [x] a" {
		t.Errorf("unexpected saved description %q", saved)
	}
	if m.Dirty() || m.status != "saved" {
		t.Errorf("expected clean saved state, got dirty=%v status=%q", m.Dirty(), m.status)
	}

	m = press(t, m, savedMsg{err: errors.New("disk full")})
	if !strings.Contains(m.status, "disk full") {
		t.Errorf("expected failure status, got %q", m.status)
	}
}

func TestSaveWithoutTarget(t *testing.T) {
	m := NewModel("- [ ] a", nil, nil)
	next, cmd := m.Update(runes("s"))
	if cmd != nil {
		t.Errorf("expected no command without a save target")
	}
	if next.(Model).status == "" {
		t.Errorf("expected a status message")
	}
}

func TestView(t *testing.T) {
	m := NewModel("intro\n- [x] milk\n- [ ] eggs", nil, nil)
	out := m.View()
	for _, want := range []string{"1/2 done", "intro", "[x] milk", "[ ] eggs", "> "} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(NewModel("", nil, nil).View(), "(empty description)") {
		t.Errorf("expected empty placeholder")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := NewModel("", nil, nil).Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}
