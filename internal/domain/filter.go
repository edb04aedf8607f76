package domain

import (
	"fmt"
	"strings"
)

// Filter is a view projection over the todo list. It is never sent to the server.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists every filter in menu order
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// String returns the config/flag spelling of the filter
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Label returns the menu label
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next cycles to the following filter in menu order
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// ParseFilter converts "all", "active" or "completed" (any case) to a Filter
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter: %q", s)
	}
}

// Keep reports whether a todo passes the filter
func (f Filter) Keep(t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the todos passing the filter, preserving order
func (f Filter) Apply(todos []Todo) []Todo {
	if f == FilterAll {
		return todos
	}
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if f.Keep(t) {
			out = append(out, t)
		}
	}
	return out
}
