package ui

import "todolist/internal/task"

// Capture returns the tasks of the rendered rows in on-screen order. It is
// what every save writes.
func (m Model) Capture() []task.Task {
	tasks := make([]task.Task, len(m.rows))
	for i, r := range m.rows {
		tasks[i] = r.task
	}
	return tasks
}

// reload reads the stored collection, sorts it by the current direction and
// rebuilds every row, then re-derives highlight and visibility.
func (m Model) reload() Model {
	tasks, err := m.store.Load(m.view.Ascending)
	if err != nil {
		m.logger.Error("load failed", "err", err)
		m.status = "読み込みに失敗しました: " + err.Error()
		return m
	}
	rows := make([]row, len(tasks))
	for i, t := range tasks {
		rows[i] = row{task: t, visible: true}
	}
	m.rows = rows
	m = m.highlight()
	return m.applyFilter()
}

// highlight marks rows due before today that are not completed. Safe to call
// any number of times.
func (m Model) highlight() Model {
	today := task.Today(m.now())
	rows := cloneRows(m.rows)
	for i := range rows {
		rows[i].overdue = task.IsOverdue(rows[i].task, today)
	}
	m.rows = rows
	return m
}

// applyFilter sets row visibility from the selected filter and re-runs the
// highlighter.
func (m Model) applyFilter() Model {
	rows := cloneRows(m.rows)
	for i := range rows {
		rows[i].visible = m.view.Filter.Visible(rows[i].task)
	}
	m.rows = rows
	m = m.highlight()
	return m.settleCursor()
}

// settleCursor moves the cursor onto the nearest visible row, preferring the
// rows after it.
func (m Model) settleCursor() Model {
	m.cursor = clampCursor(m.cursor, len(m.rows))
	if _, ok := m.selected(); !ok {
		m.cursor = m.nextVisible(m.cursor, 1)
		if _, ok := m.selected(); !ok {
			m.cursor = m.nextVisible(m.cursor, -1)
		}
	}
	return m
}

// selected returns the row under the cursor when it is visible.
func (m Model) selected() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) || !m.rows[m.cursor].visible {
		return 0, false
	}
	return m.cursor, true
}

// nextVisible returns the closest visible row from cur in direction dir,
// skipping cur itself, or cur when there is none.
func (m Model) nextVisible(cur, dir int) int {
	for i := cur + dir; i >= 0 && i < len(m.rows); i += dir {
		if m.rows[i].visible {
			return i
		}
	}
	return cur
}

// indexOf finds the visible row holding t, falling back to fallback.
func (m Model) indexOf(t task.Task, fallback int) int {
	for i, r := range m.rows {
		if r.task == t && r.visible {
			return i
		}
	}
	if fallback >= len(m.rows) {
		fallback = len(m.rows) - 1
	}
	if fallback < 0 {
		return 0
	}
	return fallback
}

func cloneRows(rows []row) []row {
	out := make([]row, len(rows))
	copy(out, rows)
	return out
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
