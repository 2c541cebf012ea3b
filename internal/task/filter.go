package task

import (
	"fmt"
	"strings"
)

// Filter selects which rows are visible by completion status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var filterOrder = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter accepts the config/selector value of a filter.
func ParseFilter(v string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range filterOrder {
		if f == known {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter %q", v)
}

// Next returns the filter that follows f in the selector.
func (f Filter) Next() Filter {
	for i, known := range filterOrder {
		if f == known {
			return filterOrder[(i+1)%len(filterOrder)]
		}
	}
	return FilterAll
}

// Visible reports whether a task's row is shown under f.
func (f Filter) Visible(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Label is the selector text for f.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "未完了"
	case FilterCompleted:
		return "完了"
	default:
		return "すべて"
	}
}
