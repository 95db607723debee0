package priority

import (
	"sort"
	"time"

	"lifeTracker/internal/models/task"
)

// Window is a closed time interval [Start, End]. The aggregation itself
// is granularity-agnostic; day/week/month/year are expressed purely by
// the bounds the caller picks.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Day covers the calendar day of t.
func Day(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// TrailingWeek covers the 7 days ending at t.
func TrailingWeek(t time.Time) Window {
	return Window{Start: t.AddDate(0, 0, -7), End: t}
}

// Month covers the calendar month of t.
func Month(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// Year covers the calendar year of t.
func Year(t time.Time) Window {
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
}

type AreaCount struct {
	Area  task.LifeArea `json:"area"`
	Count int           `json:"count"`
}

// Summary is the aggregate over one window. Count follows CreatedAt
// ("created this period"); Completed and everything derived from it
// follow CompletedAt ("completed this period"). The two notions are
// deliberately distinct.
type Summary struct {
	Count             int         `json:"count"`
	Completed         int         `json:"completed"`
	CompletionRate    float64     `json:"completion_rate"`
	AverageImpact     float64     `json:"average_impact"`
	LifeAreaBreakdown []AreaCount `json:"life_area_breakdown"`
}

// Aggregate computes the window summary. Empty input or an empty window
// yields the zero-valued summary, never an error and never NaN.
func Aggregate(tasks []*task.Task, w Window) Summary {
	s := Summary{LifeAreaBreakdown: []AreaCount{}}

	impactSum := 0
	areas := make(map[task.LifeArea]int)

	for _, t := range tasks {
		if w.Contains(t.CreatedAt) {
			s.Count++
		}
		if t.Status == task.StatusCompleted && t.CompletedAt != nil && w.Contains(*t.CompletedAt) {
			s.Completed++
			impactSum += t.Impact
			areas[t.LifeArea]++
		}
	}

	if s.Count > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Count) * 100
	}
	if s.Completed > 0 {
		s.AverageImpact = float64(impactSum) / float64(s.Completed)
	}

	for area, count := range areas {
		s.LifeAreaBreakdown = append(s.LifeAreaBreakdown, AreaCount{Area: area, Count: count})
	}
	sort.Slice(s.LifeAreaBreakdown, func(i, j int) bool {
		a, b := s.LifeAreaBreakdown[i], s.LifeAreaBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Area < b.Area
	})

	return s
}

// Bucketer maps timestamps onto discrete, steppable buckets for streak
// counting.
type Bucketer interface {
	Of(time.Time) time.Time
	Prev(time.Time) time.Time
}

type dayBucketer struct{}

func (dayBucketer) Of(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (dayBucketer) Prev(b time.Time) time.Time {
	return b.AddDate(0, 0, -1)
}

// Days buckets by calendar day, the granularity the dashboard uses.
func Days() Bucketer {
	return dayBucketer{}
}

// ComputeStreak counts consecutive buckets with at least one completed
// task, scanning backward from now. The current bucket never breaks the
// streak even if still empty; counting stops at the first empty bucket
// strictly before it.
func ComputeStreak(tasks []*task.Task, bucket Bucketer, now time.Time) int {
	done := make(map[time.Time]bool)
	for _, t := range tasks {
		if t.Status == task.StatusCompleted && t.CompletedAt != nil {
			done[bucket.Of(*t.CompletedAt)] = true
		}
	}

	streak := 0
	current := bucket.Of(now)
	if done[current] {
		streak++
	}
	for b := bucket.Prev(current); done[b]; b = bucket.Prev(b) {
		streak++
	}
	return streak
}
