package task

import (
	"sort"
	"time"
)

// SortByDueDate orders tasks by due date in place and returns the same slice.
// Tasks without a due date always go last, whatever the direction.
func SortByDueDate(tasks []Task, ascending bool) []Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case !a.HasDue():
			return false
		case !b.HasDue():
			return true
		}
		c := compareDates(a.DueDate, b.DueDate)
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return tasks
}

// compareDates compares two due dates on the calendar, falling back to plain
// string order when either side does not parse.
func compareDates(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil || errB != nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return ta.Compare(tb)
}
