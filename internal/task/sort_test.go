package task

import (
	"slices"
	"testing"
)

func dues(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.DueDate
	}
	return out
}

func TestSortByDueDate(t *testing.T) {
	input := func() []Task {
		return []Task{
			{Text: "none-1"},
			{Text: "b", DueDate: "2099-01-01"},
			{Text: "a", DueDate: "2098-01-01"},
			{Text: "none-2"},
			{Text: "c", DueDate: "2100-12-31"},
		}
	}

	tests := []struct {
		name      string
		ascending bool
		want      []string
	}{
		{"ascending", true, []string{"2098-01-01", "2099-01-01", "2100-12-31", "", ""}},
		{"descending", false, []string{"2100-12-31", "2099-01-01", "2098-01-01", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortByDueDate(input(), tt.ascending)
			if !slices.Equal(dues(got), tt.want) {
				t.Errorf("SortByDueDate: got %v, want %v", dues(got), tt.want)
			}
		})
	}
}

func TestSortByDueDateIdempotent(t *testing.T) {
	tasks := SortByDueDate([]Task{
		{Text: "x", DueDate: "2024-03-01"},
		{Text: "y"},
		{Text: "z", DueDate: "2024-01-01"},
	}, true)
	first := slices.Clone(tasks)
	SortByDueDate(tasks, true)
	if !slices.Equal(first, tasks) {
		t.Errorf("second sort changed order: %v -> %v", first, tasks)
	}
}

func TestSortByDueDateToggleTwice(t *testing.T) {
	tasks := []Task{
		{Text: "x", DueDate: "2024-03-01"},
		{Text: "y", DueDate: "2024-02-01"},
		{Text: "z", DueDate: "2024-01-01"},
		{Text: "w"},
	}
	original := slices.Clone(SortByDueDate(tasks, true))
	SortByDueDate(tasks, false)
	SortByDueDate(tasks, true)
	if !slices.Equal(original, tasks) {
		t.Errorf("toggling twice: got %v, want %v", tasks, original)
	}
}

func TestCompareDatesFallback(t *testing.T) {
	if c := compareDates("someday", "tomorrow"); c >= 0 {
		t.Errorf("compareDates fallback: got %d, want < 0", c)
	}
	if c := compareDates("2024-01-02", "2024-01-02"); c != 0 {
		t.Errorf("compareDates equal: got %d", c)
	}
}
