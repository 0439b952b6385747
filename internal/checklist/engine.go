package checklist

import "strings"

// Toggle flips every checklist line whose text is a suffix of displayText.
// Rendered rows may prefix decoration to the item text, so the match is a
// suffix test rather than equality. Each matched line flips its own status.
// Lines with empty text only match an empty displayText.
func Toggle(description, displayText string) string {
	lines := splitLines(description)
	for i, raw := range lines {
		line := ParseLine(raw)
		if !line.IsCheckbox() || !matchesDisplay(line.Text, displayText) {
			continue
		}
		lines[i] = line.toggled().String()
	}
	return joinLines(lines)
}

// ToggleLine flips the checklist line with the given 0-based ordinal among
// checklist lines. Free-text lines are not counted.
func ToggleLine(description string, index int) (string, error) {
	if index < 0 {
		return description, ErrItemNotFound
	}

	lines := splitLines(description)
	ordinal := 0
	for i, raw := range lines {
		line := ParseLine(raw)
		if !line.IsCheckbox() {
			continue
		}
		if ordinal == index {
			lines[i] = line.toggled().String()
			return joinLines(lines), nil
		}
		ordinal++
	}
	return description, ErrItemNotFound
}

// Reset unchecks every checklist line.
func Reset(description string) string {
	return UpdateAllCheckboxes(description, false)
}

// UpdateAllCheckboxes sets every checklist line to the given state.
func UpdateAllCheckboxes(description string, checked bool) string {
	lines := splitLines(description)
	for i, raw := range lines {
		lines[i] = ParseLine(raw).withChecked(checked).String()
	}
	return joinLines(lines)
}

// UpdateCheckbox forces the state of every checklist line matched by
// displayText (same suffix rule as Toggle).
func UpdateCheckbox(input UpdateCheckboxInput) UpdateCheckboxOutput {
	lines := splitLines(input.Content)
	count := 0
	for i, raw := range lines {
		line := ParseLine(raw)
		if !line.IsCheckbox() || !matchesDisplay(line.Text, input.CheckboxText) {
			continue
		}
		lines[i] = line.withChecked(input.Checked).String()
		count++
	}

	return UpdateCheckboxOutput{
		Content: joinLines(lines),
		Updated: count > 0,
		Count:   count,
	}
}

// AddItem inserts an unchecked item right after the bottom-most checklist
// line. Without any checklist line, a blank separator line and the item are
// appended. An empty text leaves the description unchanged.
func AddItem(description, text string) string {
	text = singleLine(text)
	if strings.TrimSpace(text) == "" {
		return description
	}

	lines := splitLines(description)
	last := -1
	var lastLine Line
	for i, raw := range lines {
		if line := ParseLine(raw); line.IsCheckbox() {
			last = i
			lastLine = line
		}
	}

	item := renderCheckbox(StatusUnchecked, text)
	if last < 0 {
		lines = append(lines, "", item)
		return joinLines(lines)
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:last+1]...)
	out = append(out, item+lastLine.eol)
	out = append(out, lines[last+1:]...)
	return joinLines(out)
}

// ParseCheckboxes lists every checklist line in order.
func ParseCheckboxes(description string) []Checkbox {
	lines := splitLines(description)
	checkboxes := make([]Checkbox, 0)
	for i, raw := range lines {
		line := ParseLine(raw)
		if !line.IsCheckbox() {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Index:   len(checkboxes),
			Status:  string(line.Status),
			Checked: line.Checked(),
			Text:    line.Text,
			RawLine: raw,
		})
	}
	return checkboxes
}

// GetStats calculates checklist progress.
func GetStats(description string) ChecklistStats {
	checkboxes := ParseCheckboxes(description)
	total := len(checkboxes)
	if total == 0 {
		return ChecklistStats{}
	}

	completed := 0
	for _, cb := range checkboxes {
		if cb.Checked {
			completed++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// IsFullyCompleted reports whether the description has checkboxes and all
// of them are checked.
func IsFullyCompleted(description string) bool {
	stats := GetStats(description)
	return stats.Total > 0 && stats.Pending == 0
}

func matchesDisplay(text, displayText string) bool {
	if text == "" {
		return displayText == ""
	}
	return strings.HasSuffix(displayText, text)
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine keeps a new item on one line.
func singleLine(text string) string {
	return newlineReplacer.Replace(text)
}
