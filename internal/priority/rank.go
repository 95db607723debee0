package priority

import (
	"fmt"
	"sort"
	"strings"

	"lifeTracker/internal/models/task"
)

type SortKey string

const SortByPriority SortKey = "priority"
const SortByImpact SortKey = "impact"
const SortByUrgency SortKey = "urgency"
const SortByEffort SortKey = "effort"
const SortByDueDate SortKey = "due_date"

// FilterAll is the sentinel meaning "no restriction" for status and
// life-area filters, same as leaving them empty.
const FilterAll = "all"

// Filter narrows and orders a task list. Zero value means: no
// restrictions, sorted by priority score.
type Filter struct {
	Status   string
	LifeArea string
	SortBy   SortKey
}

// FilterError reports an unrecognized filter value. Unknown values fail
// fast instead of silently falling back, so the API layer can answer 400.
type FilterError struct {
	Field string
	Value string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("unknown %s filter value %q", e.Field, e.Value)
}

func (f Filter) validate() error {
	if f.Status != "" && f.Status != FilterAll && !task.Status(f.Status).Valid() {
		return &FilterError{Field: "status", Value: f.Status}
	}
	if f.LifeArea != "" && f.LifeArea != FilterAll && !task.LifeArea(f.LifeArea).Valid() {
		return &FilterError{Field: "life_area", Value: f.LifeArea}
	}
	switch f.SortBy {
	case "", SortByPriority, SortByImpact, SortByUrgency, SortByEffort, SortByDueDate:
	default:
		return &FilterError{Field: "sort_by", Value: string(f.SortBy)}
	}
	return nil
}

// Rank returns a new slice with the filter applied and a total,
// deterministic order: the requested key first, then created-at
// (most recent first), then id. The input slice is not modified.
func Rank(tasks []*task.Task, f Filter) ([]*task.Task, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Status != "" && f.Status != FilterAll && t.Status != task.Status(f.Status) {
			continue
		}
		if f.LifeArea != "" && f.LifeArea != FilterAll && t.LifeArea != task.LifeArea(f.LifeArea) {
			continue
		}
		out = append(out, t)
	}

	key := f.SortBy
	if key == "" {
		key = SortByPriority
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], key)
	})

	return out, nil
}

func less(a, b *task.Task, key SortKey) bool {
	switch key {
	case SortByImpact:
		if a.Impact != b.Impact {
			return a.Impact > b.Impact
		}
	case SortByUrgency:
		if a.Urgency != b.Urgency {
			return a.Urgency > b.Urgency
		}
	case SortByEffort:
		// The one ascending sort: low effort is desirable.
		if a.Effort != b.Effort {
			return a.Effort < b.Effort
		}
	case SortByDueDate:
		// Earliest due first, tasks without a due date after all that have one.
		switch {
		case a.DueDate == nil && b.DueDate == nil:
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
	default:
		if a.PriorityScore != b.PriorityScore {
			return a.PriorityScore > b.PriorityScore
		}
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return strings.Compare(a.ID.String(), b.ID.String()) < 0
}
