package services

import (
	"strings"
	"sync/atomic"

	"github.com/Winnie3315/todo-next-by-winnie/app/models"
)

// IDSource hands out task ids.
type IDSource interface {
	Next() int64
}

// Sequence is a monotonic IDSource starting at 1. Ids are never reused,
// even after the task holding one is removed.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// NewTask validates text and builds an open task with a fresh id.
func NewTask(text string, ids IDSource) (models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return models.Task{}, models.ErrValidation
	}
	return models.Task{ID: ids.Next(), Text: text}, nil
}

// Append returns a new collection with t at the end.
func Append(c models.Collection, t models.Task) models.Collection {
	out := make(models.Collection, 0, len(c)+1)
	out = append(out, c...)
	return append(out, t)
}

// Toggle returns a new collection with the done flag of task id inverted.
// Unknown ids leave the contents unchanged.
func Toggle(c models.Collection, id int64) models.Collection {
	out := c.Clone()
	if i := out.IndexOf(id); i >= 0 {
		out[i].Done = !out[i].Done
	}
	return out
}

// Remove returns a new collection without task id, keeping the order of
// the rest. Unknown ids leave the contents unchanged.
func Remove(c models.Collection, id int64) models.Collection {
	out := make(models.Collection, 0, len(c))
	for _, t := range c {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
