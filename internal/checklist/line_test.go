package checklist_test

import (
	"testing"

	"item-checklist/internal/checklist"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		isCheckbox bool
		status     rune
		text       string
		checked    bool
	}{
		{name: "Unchecked", raw: "- [ ] buy milk", isCheckbox: true, status: ' ', text: "buy milk"},
		{name: "Checked", raw: "- [x] buy milk", isCheckbox: true, status: 'x', text: "buy milk", checked: true},
		{name: "Other marker counts as checked", raw: "- [X] call", isCheckbox: true, status: 'X', text: "call", checked: true},
		{name: "Multibyte marker", raw: "- [é] call", isCheckbox: true, status: 'é', text: "call", checked: true},
		{name: "Empty text", raw: "- [ ] ", isCheckbox: true, status: ' ', text: ""},
		{name: "Embedded pattern stays in text", raw: "- [ ] - [x] nested", isCheckbox: true, status: ' ', text: "- [x] nested"},
		{name: "Carriage return kept out of text", raw: "- [ ] a\r", isCheckbox: true, status: ' ', text: "a"},
		{name: "Empty brackets", raw: "- [] a"},
		{name: "Two markers", raw: "- [xx] a"},
		{name: "Missing space after bracket", raw: "- [ ]a"},
		{name: "Missing closing bracket", raw: "- [ a"},
		{name: "Indented", raw: "  - [ ] a"},
		{name: "Star bullet", raw: "* [ ] a"},
		{name: "Plain text", raw: "hello world"},
		{name: "Empty line", raw: ""},
		{name: "Prefix only", raw: "- ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := checklist.ParseLine(tt.raw)
			if line.IsCheckbox() != tt.isCheckbox {
				t.Fatalf("IsCheckbox() = %v, want %v", line.IsCheckbox(), tt.isCheckbox)
			}
			if line.String() != tt.raw {
				t.Errorf("String() = %q, want raw %q", line.String(), tt.raw)
			}
			if !tt.isCheckbox {
				return
			}
			if line.Status != tt.status {
				t.Errorf("Status = %q, want %q", line.Status, tt.status)
			}
			if line.Text != tt.text {
				t.Errorf("Text = %q, want %q", line.Text, tt.text)
			}
			if line.Checked() != tt.checked {
				t.Errorf("Checked() = %v, want %v", line.Checked(), tt.checked)
			}
		})
	}
}
