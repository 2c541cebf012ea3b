package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/task"
)

// Fixed user-facing strings.
const (
	msgEmptyText   = "タスクを入力してください"
	msgBadDueDate  = "期限はYYYY-MM-DD形式で入力してください"
	promptEditText = "タスクを編集:"
	promptEditDue  = "期限を編集（YYYY-MM-DD形式）:"
	duePrefix      = "期限: "
	labelAscending = "昇順"
	labelDescend   = "降順"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeAlert
)

// TaskStore is the persistence the view saves to and reloads from.
type TaskStore interface {
	Load(ascending bool) ([]task.Task, error)
	Save(tasks []task.Task) error
}

// ViewState is the presentation state that survives reloads.
type ViewState struct {
	Ascending bool
	Filter    task.Filter
}

// SortLabel is the sort toggle's text for the current direction.
func (v ViewState) SortLabel() string {
	if v.Ascending {
		return labelAscending
	}
	return labelDescend
}

type row struct {
	task    task.Task
	visible bool
	overdue bool
}

// editState walks the two edit prompts for one row. A nil answer means the
// prompt was cancelled.
type editState struct {
	row  int
	step int
	text *string
	due  *string
}

type readyMsg struct{}

type Model struct {
	store  TaskStore
	logger *log.Logger
	now    func() time.Time
	keys   keyMap
	help   help.Model

	view   ViewState
	rows   []row
	cursor int
	mode   mode
	// alertReturn is the mode restored when the alert is dismissed.
	alertReturn mode
	alert       string
	status      string

	textInput textinput.Model
	dateInput textinput.Model
	prompt    textinput.Model
	edit      *editState
}

// Options carries collaborators that tests replace.
type Options struct {
	Logger *log.Logger
	Now    func() time.Time
}

func NewModel(store TaskStore, cfg config.Config, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "新しいタスク"
	ti.CharLimit = 256
	ti.Width = 40

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = 10
	di.Width = 12

	pi := textinput.New()
	pi.CharLimit = 256
	pi.Width = 40

	return Model{
		store:     store,
		logger:    opts.Logger,
		now:       opts.Now,
		keys:      newKeyMap(cfg.Keys),
		help:      help.New(),
		view:      ViewState{Ascending: cfg.SortAscending, Filter: cfg.Filter()},
		mode:      modeList,
		textInput: ti,
		dateInput: di,
		prompt:    pi,
	}
}

func Run(store TaskStore, cfg config.Config, logger *log.Logger) error {
	m := NewModel(store, cfg, Options{Logger: logger})
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case readyMsg:
		m = m.reload()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAlert:
			return m.updateAlert()
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 30 {
			m.textInput.Width = msg.Width - 30
			m.prompt.Width = msg.Width - 10
		}
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateAlert() (tea.Model, tea.Cmd) {
	m.mode = m.alertReturn
	m.alert = ""
	return m, nil
}

func (m Model) showAlert(text string) Model {
	m.alertReturn = m.mode
	m.alert = text
	m.mode = modeAlert
	return m
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.nextVisible(m.cursor, 1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.nextVisible(m.cursor, -1)
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.dateInput.Blur()
		m.status = ""
		cmd := m.textInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if i, ok := m.selected(); ok {
			m = m.toggle(i)
		}
	case key.Matches(msg, m.keys.Delete):
		if i, ok := m.selected(); ok {
			m = m.deleteRow(i)
		}
	case key.Matches(msg, m.keys.Edit):
		if i, ok := m.selected(); ok {
			return m.startEdit(i)
		}
	case key.Matches(msg, m.keys.SortToggle):
		m.view.Ascending = !m.view.Ascending
		m.logger.Debug("sort direction changed", "ascending", m.view.Ascending)
		m = m.reload()
	case key.Matches(msg, m.keys.Filter):
		m.view.Filter = m.view.Filter.Next()
		m = m.applyFilter()
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.textInput.Blur()
		m.dateInput.Blur()
		m.status = "キャンセルしました"
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		if m.textInput.Focused() {
			m.textInput.Blur()
			cmd := m.dateInput.Focus()
			return m, cmd
		}
		m.dateInput.Blur()
		cmd := m.textInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Confirm):
		return m.addTask(), nil
	}
	var cmd tea.Cmd
	if m.dateInput.Focused() {
		m.dateInput, cmd = m.dateInput.Update(msg)
	} else {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m Model) addTask() Model {
	t, err := task.New(m.textInput.Value(), m.dateInput.Value())
	if errors.Is(err, task.ErrBadDueDate) {
		return m.showAlert(msgBadDueDate)
	}
	if err != nil {
		return m.showAlert(msgEmptyText)
	}
	tasks := append(m.Capture(), t)
	if err := m.save(tasks); err != nil {
		m.status = "保存に失敗しました: " + err.Error()
		return m
	}
	m.textInput.SetValue("")
	m.dateInput.SetValue("")
	m.textInput.Blur()
	m.dateInput.Blur()
	m.mode = modeList
	m.status = "追加しました"
	m = m.reload()
	m.cursor = m.indexOf(t, m.cursor)
	return m
}

func (m Model) toggle(i int) Model {
	tasks := m.Capture()
	tasks[i].Completed = !tasks[i].Completed
	if err := m.save(tasks); err != nil {
		m.status = "保存に失敗しました: " + err.Error()
		return m
	}
	m.rows = cloneRows(m.rows)
	m.rows[i].task = tasks[i]
	return m.applyFilter()
}

// deleteRow drops the row and persists the rest. Other rows keep their
// highlight and visibility until the next reload.
func (m Model) deleteRow(i int) Model {
	tasks := m.Capture()
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := m.save(tasks); err != nil {
		m.status = "保存に失敗しました: " + err.Error()
		return m
	}
	rows := make([]row, 0, len(m.rows)-1)
	rows = append(rows, m.rows[:i]...)
	m.rows = append(rows, m.rows[i+1:]...)
	m.status = "削除しました"
	return m.settleCursor()
}

func (m Model) startEdit(i int) (tea.Model, tea.Cmd) {
	m.edit = &editState{row: i}
	m.mode = modeEdit
	m.prompt.SetValue(m.rows[i].task.Text)
	m.prompt.CursorEnd()
	cmd := m.prompt.Focus()
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		m.mode = modeList
		return m, nil
	}
	var answered bool
	var answer *string
	switch {
	case key.Matches(msg, m.keys.Cancel):
		answered = true
	case key.Matches(msg, m.keys.Confirm):
		v := m.prompt.Value()
		answer = &v
		answered = true
	}
	if !answered {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	edit := *m.edit
	if edit.step == 0 {
		edit.text = answer
		edit.step = 1
		m.edit = &edit
		m.prompt.SetValue(m.rows[edit.row].task.DueDate)
		m.prompt.CursorEnd()
		return m, nil
	}
	edit.due = answer
	m.edit = nil
	m.mode = modeList
	m.prompt.Blur()
	m.prompt.SetValue("")
	return m.applyEdit(edit), nil
}

func (m Model) applyEdit(e editState) Model {
	tasks := m.Capture()
	if e.row < 0 || e.row >= len(tasks) {
		return m
	}
	tasks[e.row].Edit(e.text, e.due)
	if err := m.save(tasks); err != nil {
		m.status = "保存に失敗しました: " + err.Error()
		return m
	}
	edited := tasks[e.row]
	m.status = "更新しました"
	m = m.reload()
	m.cursor = m.indexOf(edited, m.cursor)
	return m
}

func (m Model) save(tasks []task.Task) error {
	if err := m.store.Save(tasks); err != nil {
		m.logger.Error("save failed", "count", len(tasks), "err", err)
		return err
	}
	return nil
}
