package tui

import (
	"fmt"
	"strings"

	"item-checklist/internal/checklist"
)

const helpText = "↑/↓ move • space toggle • a add • r reset • t timestamp • s save • q quit"

func (m Model) View() string {
	var b strings.Builder

	title := "Checklist"
	if m.dirty {
		title += " *"
	}
	stats := checklist.GetStats(m.desc)
	b.WriteString(titleStyle.Render(title))
	b.WriteString(" ")
	b.WriteString(progressStyle.Render(fmt.Sprintf("%d/%d done (%.0f%%)", stats.Completed, stats.Total, stats.Progress)))
	b.WriteString("\n\n")

	if m.desc == "" {
		b.WriteString(textStyle.Render("(empty description)"))
		b.WriteString("\n")
	}

	byLine := make(map[int]checklist.Checkbox, len(m.rows))
	for _, cb := range m.rows {
		byLine[cb.Line] = cb
	}

	if m.desc != "" {
		for i, raw := range strings.Split(m.desc, "\n") {
			cb, ok := byLine[i]
			if !ok {
				b.WriteString("    " + textStyle.Render(strings.TrimSuffix(raw, "\r")))
				b.WriteString("\n")
				continue
			}
			b.WriteString(m.renderRow(cb))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString("Add: " + m.input.View() + "\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (m Model) renderRow(cb checklist.Checkbox) string {
	box := "[ ]"
	style := pendingStyle
	if cb.Checked {
		box = "[x]"
		style = checkedStyle
	}

	pointer := "  "
	if cb.Index == m.cursor {
		pointer = "> "
		style = selectedStyle
	}
	return pointer + "  " + style.Render(box+" "+cb.Text)
}
