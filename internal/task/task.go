// Package task holds the task model and the pure sort, filter and overdue rules
// applied on every render.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the due date format stored in the collection.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyText is returned when a task would be created without text.
	ErrEmptyText = errors.New("task text is empty")
	// ErrBadDueDate is returned when a due date is not a DateLayout calendar date.
	ErrBadDueDate = errors.New("due date is not YYYY-MM-DD")
)

// Task is a single to-do item. It has no identifier; its position in the
// collection is its identity.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate"`
}

// New builds an uncompleted task from user input.
func New(text, due string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	due = strings.TrimSpace(due)
	if due != "" {
		if _, err := time.Parse(DateLayout, due); err != nil {
			return Task{}, fmt.Errorf("%w: %q", ErrBadDueDate, due)
		}
	}
	return Task{Text: text, DueDate: due}, nil
}

// HasDue reports whether the task carries a due date.
func (t Task) HasDue() bool {
	return t.DueDate != ""
}

// Edit applies replacement values. A nil or blank value leaves the field as is.
func (t *Task) Edit(text, due *string) {
	if text != nil {
		if v := strings.TrimSpace(*text); v != "" {
			t.Text = v
		}
	}
	if due != nil {
		if v := strings.TrimSpace(*due); v != "" {
			t.DueDate = v
		}
	}
}

// Today returns the local calendar date of now in DateLayout.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// IsOverdue reports whether t is due strictly before today and not completed.
// Dates in DateLayout order lexically the same way they order on the calendar.
func IsOverdue(t Task, today string) bool {
	return t.HasDue() && !t.Completed && t.DueDate < today
}
