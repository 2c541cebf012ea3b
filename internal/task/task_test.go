package task

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	got, err := New("  Buy milk ", " 2020-01-01 ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := Task{Text: "Buy milk", DueDate: "2020-01-01"}
	if got != want {
		t.Errorf("New: got %+v, want %+v", got, want)
	}

	if _, err := New("   ", "2020-01-01"); !errors.Is(err, ErrEmptyText) {
		t.Errorf("New blank: got %v, want ErrEmptyText", err)
	}

	undated, err := New("Read", "  ")
	if err != nil || undated.HasDue() {
		t.Errorf("New without due date: got %+v, %v", undated, err)
	}
}

func TestNewRejectsBadDueDate(t *testing.T) {
	for _, due := range []string{"2030-1-1", "someday", "2030-02-30", "01/05/2030"} {
		t.Run(due, func(t *testing.T) {
			if _, err := New("Buy milk", due); !errors.Is(err, ErrBadDueDate) {
				t.Errorf("New(%q): got %v, want ErrBadDueDate", due, err)
			}
		})
	}
}

func TestEdit(t *testing.T) {
	str := func(s string) *string { return &s }
	tests := []struct {
		name string
		text *string
		due  *string
		want Task
	}{
		{"both replaced", str(" Walk dog "), str("2030-02-02"), Task{Text: "Walk dog", DueDate: "2030-02-02"}},
		{"empty text keeps original", str(""), nil, Task{Text: "Buy milk", DueDate: "2020-01-01"}},
		{"blank date keeps original", nil, str("  "), Task{Text: "Buy milk", DueDate: "2020-01-01"}},
		{"cancelled keeps both", nil, nil, Task{Text: "Buy milk", DueDate: "2020-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Task{Text: "Buy milk", DueDate: "2020-01-01"}
			got.Edit(tt.text, tt.due)
			if got != tt.want {
				t.Errorf("Edit: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	today := Today(time.Date(2024, 6, 15, 23, 59, 0, 0, time.Local))
	if today != "2024-06-15" {
		t.Fatalf("Today: got %q", today)
	}
	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"past and open", Task{Text: "a", DueDate: "2024-06-14"}, true},
		{"past and done", Task{Text: "a", DueDate: "2020-01-01", Completed: true}, false},
		{"due today", Task{Text: "a", DueDate: "2024-06-15"}, false},
		{"future", Task{Text: "a", DueDate: "2024-06-16"}, false},
		{"no due date", Task{Text: "a"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.task, today); got != tt.want {
				t.Errorf("IsOverdue(%+v): got %v, want %v", tt.task, got, tt.want)
			}
		})
	}
}
