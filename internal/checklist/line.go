package checklist

import (
	"strings"
	"unicode/utf8"
)

// LineKind tells a checklist line apart from free text.
type LineKind int

const (
	KindText LineKind = iota
	KindCheckbox
)

// Line is one parsed description line.
type Line struct {
	Kind   LineKind
	Status rune   // only set for KindCheckbox
	Text   string // only set for KindCheckbox
	Raw    string

	eol string
}

// ParseLine parses a single line. A checklist line starts with "- [",
// then exactly one character, then "] "; the rest is the item text.
// Anything else is free text. A trailing carriage return is kept aside so
// rewritten lines keep their original line ending.
func ParseLine(raw string) Line {
	body, eol := raw, ""
	if strings.HasSuffix(body, carriageReturn) {
		body = strings.TrimSuffix(body, carriageReturn)
		eol = carriageReturn
	}

	rest, ok := strings.CutPrefix(body, linePrefix)
	if !ok {
		return Line{Kind: KindText, Raw: raw}
	}

	status, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		return Line{Kind: KindText, Raw: raw}
	}

	text, ok := strings.CutPrefix(rest[size:], statusSuffix)
	if !ok {
		return Line{Kind: KindText, Raw: raw}
	}

	return Line{
		Kind:   KindCheckbox,
		Status: status,
		Text:   text,
		Raw:    raw,
		eol:    eol,
	}
}

// IsCheckbox reports whether the line is a checklist line.
func (l Line) IsCheckbox() bool {
	return l.Kind == KindCheckbox
}

// Checked treats a space as unchecked and any other marker as checked.
func (l Line) Checked() bool {
	return l.IsCheckbox() && l.Status != StatusUnchecked
}

// String renders the line. Unmodified lines render as their raw input.
func (l Line) String() string {
	return l.Raw
}

// withChecked returns the line in the requested state, written with a
// canonical marker. Lines already in that state are returned as is.
func (l Line) withChecked(checked bool) Line {
	if !l.IsCheckbox() || l.Checked() == checked {
		return l
	}

	status := StatusUnchecked
	if checked {
		status = StatusChecked
	}

	l.Status = status
	l.Raw = renderCheckbox(status, l.Text) + l.eol
	return l
}

func (l Line) toggled() Line {
	return l.withChecked(!l.Checked())
}

func renderCheckbox(status rune, text string) string {
	return linePrefix + string(status) + statusSuffix + text
}

// splitLines splits a description into lines. An empty description has
// zero lines.
func splitLines(description string) []string {
	if description == "" {
		return nil
	}
	return strings.Split(description, lineSeparator)
}

func joinLines(lines []string) string {
	return strings.Join(lines, lineSeparator)
}
