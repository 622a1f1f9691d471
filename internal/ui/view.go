package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// reservedRows is what the panel chrome costs: prompt, status line, border
const reservedRows = 6

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	visible := m.visibleRows()
	for i, match := range m.results.Matches {
		if i >= visible {
			break
		}

		row := m.renderMatch(match.Text, match.Positions, i == m.selected)
		if m.cfg.UISettings.ShowLineNumbers {
			row = m.styles.LineNumber.Render(fmt.Sprintf("%5d ", match.LineIndex)) + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())

	return m.styles.Panel.Width(m.panelWidth()).Render(b.String())
}

// renderMatch renders one result line, highlighting the matched rune
// offsets and truncating to the panel width
func (m *Model) renderMatch(text string, positions []int, selected bool) string {
	base := m.styles.Result
	if selected {
		base = m.styles.Selected
	}
	highlight := m.styles.Highlight
	if selected {
		highlight = highlight.Background(m.styles.Selected.GetBackground())
	}

	budget := m.panelWidth() - 4
	if m.cfg.UISettings.ShowLineNumbers {
		budget -= 6
	}
	if budget < 1 {
		budget = 1
	}

	matched := make(map[int]bool, len(positions))
	for _, p := range positions {
		matched[p] = true
	}

	var out strings.Builder
	used := 0
	for i, r := range []rune(text) {
		w := runewidth.RuneWidth(r)
		if used+w > budget {
			out.WriteString(base.Render("…"))
			break
		}
		used += w
		if matched[i] {
			out.WriteString(highlight.Render(string(r)))
		} else {
			out.WriteString(base.Render(string(r)))
		}
	}
	return out.String()
}

// statusLine summarizes the engine state under the result list
func (m *Model) statusLine() string {
	if m.errText != "" {
		return m.styles.StatusError.Render(m.errText)
	}
	if m.searching() {
		return m.styles.Status.Render("searching…")
	}
	if m.input.Value() == "" {
		return m.styles.Dim.Render("type to search · enter selects · esc dismisses")
	}

	count := len(m.results.Matches)
	status := fmt.Sprintf("%d match", count)
	if count != 1 {
		status += "es"
	}
	if count > 0 {
		status += fmt.Sprintf(" · %d/%d", m.selected+1, count)
	}
	return m.styles.Status.Render(status)
}

func (m *Model) panelWidth() int {
	if m.width <= 4 {
		return 76
	}
	return m.width - 4
}

// visibleRows bounds how many results fit on screen; the result set itself
// is already capped by the engine
func (m *Model) visibleRows() int {
	if m.height <= reservedRows {
		return 10
	}
	return m.height - reservedRows
}
