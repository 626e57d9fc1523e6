package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when a task is created with empty text.
	ErrValidation = errors.New("task text is required")

	// ErrInvalidQuery is returned when a filter or sort parameter is not recognised.
	ErrInvalidQuery = errors.New("invalid query")
)

// Task is a single entry of the task list.
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Collection is the ordered set of tasks, in creation order.
type Collection []Task

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// IndexOf returns the position of the task with the given id, or -1.
func (c Collection) IndexOf(id int64) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// StatusFilter selects tasks by completion state.
type StatusFilter string

const (
	StatusAll     StatusFilter = "all"
	StatusDone    StatusFilter = "done"
	StatusNotDone StatusFilter = "not-done"
)

// Match reports whether t passes the filter.
func (f StatusFilter) Match(t Task) bool {
	switch f {
	case StatusDone:
		return t.Done
	case StatusNotDone:
		return !t.Done
	default:
		return true
	}
}

// ParseStatusFilter accepts all, done and not-done ("not done" and
// "not_done" too). Empty input means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return StatusAll, nil
	case "done":
		return StatusDone, nil
	case "not-done", "not done", "not_done":
		return StatusNotDone, nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidQuery, s)
}

// SortKey names the field the projection is ordered by.
type SortKey string

const (
	SortByText SortKey = "text"
	// SortNone keeps collection order.
	SortNone SortKey = "none"
)

// ParseSortKey accepts text (or task) and none. Empty input means text.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(s) {
	case "", "text", "task":
		return SortByText, nil
	case "none":
		return SortNone, nil
	}
	return "", fmt.Errorf("%w: sort %q", ErrInvalidQuery, s)
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection accepts asc and desc, long forms included. Empty
// input means asc.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(s) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: order %q", ErrInvalidQuery, s)
}

// Query holds the inputs of a projection.
type Query struct {
	Status    StatusFilter
	Text      string
	SortKey   SortKey
	Direction SortDirection
}

// DefaultQuery shows every task sorted by text ascending.
func DefaultQuery() Query {
	return Query{Status: StatusAll, SortKey: SortByText, Direction: Ascending}
}
