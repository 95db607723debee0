package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/goal"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/priority"
	rep "lifeTracker/internal/repository"
)

const dailyHistoryDays = 7
const monthlyHistoryMonths = 6

// StatsService computes the dashboard's read-side views: quick stats,
// life-area overview and the four progress granularities. It fetches
// the user's tasks once per call and feeds them to the aggregation core.
type StatsService struct {
	tasks rep.TaskRepository
	goals rep.GoalRepository
}

func NewStatsService(tasks rep.TaskRepository, goals rep.GoalRepository) StatsService {
	return StatsService{
		tasks: tasks,
		goals: goals,
	}
}

type QuickStats struct {
	TodayCompleted int     `json:"today_completed"`
	TodayTotal     int     `json:"today_total"`
	WeekStreak     int     `json:"week_streak"`
	ImpactScore    float64 `json:"impact_score"`
}

type AreaStat struct {
	Area           task.LifeArea `json:"area"`
	ActiveTasks    int           `json:"active_tasks"`
	CompletionRate float64       `json:"completion_rate"`
}

type DailyEntry struct {
	Date    string           `json:"date"`
	Summary priority.Summary `json:"summary"`
}

type MonthlyEntry struct {
	Month   string           `json:"month"`
	Summary priority.Summary `json:"summary"`
}

type YearlySummary struct {
	Year           int              `json:"year"`
	Summary        priority.Summary `json:"summary"`
	GoalsCompleted int              `json:"goals_completed"`
}

func (s *StatsService) Quick(ctx context.Context, userID uuid.UUID, now time.Time) (*QuickStats, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	today := priority.Aggregate(tasks, priority.Day(now))
	week := priority.Aggregate(tasks, priority.TrailingWeek(now))

	return &QuickStats{
		TodayCompleted: today.Completed,
		TodayTotal:     today.Count,
		WeekStreak:     priority.ComputeStreak(tasks, priority.Days(), now),
		ImpactScore:    week.AverageImpact,
	}, nil
}

// LifeAreas breaks the user's tasks down per area: active count and
// all-time completion rate. Areas with no active tasks are omitted;
// order is most active first.
func (s *StatsService) LifeAreas(ctx context.Context, userID uuid.UUID) ([]AreaStat, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	type counts struct {
		active    int
		completed int
		total     int
	}
	byArea := make(map[task.LifeArea]*counts)

	for _, t := range tasks {
		c, ok := byArea[t.LifeArea]
		if !ok {
			c = &counts{}
			byArea[t.LifeArea] = c
		}
		c.total++
		switch t.Status {
		case task.StatusTodo, task.StatusInProgress:
			c.active++
		case task.StatusCompleted:
			c.completed++
		}
	}

	stats := []AreaStat{}
	for area, c := range byArea {
		if c.active == 0 {
			continue
		}
		stats = append(stats, AreaStat{
			Area:           area,
			ActiveTasks:    c.active,
			CompletionRate: float64(c.completed) / float64(c.total) * 100,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].ActiveTasks != stats[j].ActiveTasks {
			return stats[i].ActiveTasks > stats[j].ActiveTasks
		}
		return stats[i].Area < stats[j].Area
	})
	return stats, nil
}

// Daily returns one aggregate per day for the last 7 days, oldest first.
func (s *StatsService) Daily(ctx context.Context, userID uuid.UUID, now time.Time) ([]DailyEntry, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	entries := make([]DailyEntry, 0, dailyHistoryDays)
	for i := dailyHistoryDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entries = append(entries, DailyEntry{
			Date:    day.Format("2006-01-02"),
			Summary: priority.Aggregate(tasks, priority.Day(day)),
		})
	}
	return entries, nil
}

// Weekly returns the trailing 7-day aggregate.
func (s *StatsService) Weekly(ctx context.Context, userID uuid.UUID, now time.Time) (*priority.Summary, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	summary := priority.Aggregate(tasks, priority.TrailingWeek(now))
	return &summary, nil
}

// Monthly returns one aggregate per calendar month for the last 6
// months, oldest first.
func (s *StatsService) Monthly(ctx context.Context, userID uuid.UUID, now time.Time) ([]MonthlyEntry, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	entries := make([]MonthlyEntry, 0, monthlyHistoryMonths)
	for i := monthlyHistoryMonths - 1; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		entries = append(entries, MonthlyEntry{
			Month:   month.Format("Jan 2006"),
			Summary: priority.Aggregate(tasks, priority.Month(month)),
		})
	}
	return entries, nil
}

// Yearly returns the calendar-year aggregate plus the number of goals
// completed this year.
func (s *StatsService) Yearly(ctx context.Context, userID uuid.UUID, now time.Time) (*YearlySummary, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	window := priority.Year(now)
	summary := priority.Aggregate(tasks, window)

	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	goalsCompleted := 0
	for _, g := range goals {
		if g.Status != goal.StatusCompleted {
			continue
		}
		completedAt := g.CreatedAt
		if g.UpdatedAt != nil {
			completedAt = *g.UpdatedAt
		}
		if window.Contains(completedAt) {
			goalsCompleted++
		}
	}

	return &YearlySummary{
		Year:           now.Year(),
		Summary:        summary,
		GoalsCompleted: goalsCompleted,
	}, nil
}
