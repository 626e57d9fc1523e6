package services

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Winnie3315/todo-next-by-winnie/app/models"
)

// Project filters and sorts c for display. The input is never modified and
// the returned slice is always freshly allocated. Equal texts keep their
// relative input order.
func Project(c models.Collection, q models.Query) []models.Task {
	out := make([]models.Task, 0, len(c))
	for _, t := range c {
		if !q.Status.Match(t) {
			continue
		}
		// case-sensitive, filter is used as typed
		if !strings.Contains(t.Text, q.Text) {
			continue
		}
		out = append(out, t)
	}

	if q.SortKey == models.SortNone {
		return out
	}

	// Collators keep internal buffers, so one per call.
	col := collate.New(language.Und)
	cmp := func(a, b models.Task) int {
		return col.CompareString(a.Text, b.Text)
	}
	if q.Direction == models.Descending {
		cmp = func(a, b models.Task) int {
			return col.CompareString(b.Text, a.Text)
		}
	}
	slices.SortStableFunc(out, cmp)
	return out
}
