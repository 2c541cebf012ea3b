package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	normalRowStyle = lipgloss.NewStyle()
	overdueStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#ffcdd2")).Foreground(lipgloss.Color("#000000"))
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	dueStyle       = lipgloss.NewStyle().Faint(true)
	alertStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Bold(true)
	statusStyle    = lipgloss.NewStyle().Italic(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todo"))
	b.WriteString(fmt.Sprintf("  並び順: %s  フィルター: %s", m.view.SortLabel(), m.view.Filter.Label()))
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskList())
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("タスク: ")
		b.WriteString(m.textInput.View())
		b.WriteString("\n期限:   ")
		b.WriteString(m.dateInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(formHelp{keys: m.keys}))
	case modeEdit:
		if m.edit != nil && m.edit.step == 1 {
			b.WriteString(promptEditDue)
		} else {
			b.WriteString(promptEditText)
		}
		b.WriteString("\n")
		b.WriteString(m.prompt.View())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(formHelp{keys: m.keys}))
	case modeAlert:
		b.WriteString(alertStyle.Render(m.alert))
		b.WriteString("\n")
	default:
		b.WriteString(m.help.View(m.keys))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTaskList() string {
	if len(m.rows) == 0 {
		return "タスクはありません\n"
	}
	var b strings.Builder
	shown := 0
	for i, r := range m.rows {
		if !r.visible {
			continue
		}
		shown++
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(m.renderRow(r))
		b.WriteString("\n")
	}
	if shown == 0 {
		b.WriteString("表示するタスクはありません\n")
	}
	return b.String()
}

func (m Model) renderRow(r row) string {
	checkbox := "[ ]"
	if r.task.Completed {
		checkbox = "[x]"
	}
	text := r.task.Text
	if r.task.Completed {
		text = completedStyle.Render(text)
	}
	body := checkbox + " " + text
	if label := dueLabel(r.task.DueDate); label != "" {
		body += "  " + dueStyle.Render(label)
	}
	if r.overdue {
		return overdueStyle.Render(body)
	}
	return normalRowStyle.Render(body)
}

// dueLabel is the row's due date text, empty when there is no due date.
func dueLabel(due string) string {
	if due == "" {
		return ""
	}
	return duePrefix + due
}
