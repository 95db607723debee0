package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifeTracker/internal/models/goal"
	"lifeTracker/internal/models/problem"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/priority"
	"lifeTracker/internal/service"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, in service.CreateTaskInput) (*task.Task, error)
	GetTaskByID(ctx context.Context, userID, id uuid.UUID) (*task.Task, error)
	UpdateTask(ctx context.Context, userID, id uuid.UUID, options ...task.TaskOption) (*task.Task, error)
	CompleteTask(ctx context.Context, userID, id uuid.UUID) (*task.Task, error)
	DeleteTask(ctx context.Context, userID, id uuid.UUID) error
	ListTasks(ctx context.Context, userID uuid.UUID, filter priority.Filter) ([]*task.Task, error)
	TodayFocus(ctx context.Context, userID uuid.UUID) ([]*task.Task, error)
	UpcomingTasks(ctx context.Context, userID uuid.UUID) ([]*task.Task, error)
	HealthCheck(ctx context.Context) error
}

type StatsService interface {
	Quick(ctx context.Context, userID uuid.UUID, now time.Time) (*service.QuickStats, error)
	LifeAreas(ctx context.Context, userID uuid.UUID) ([]service.AreaStat, error)
	Daily(ctx context.Context, userID uuid.UUID, now time.Time) ([]service.DailyEntry, error)
	Weekly(ctx context.Context, userID uuid.UUID, now time.Time) (*priority.Summary, error)
	Monthly(ctx context.Context, userID uuid.UUID, now time.Time) ([]service.MonthlyEntry, error)
	Yearly(ctx context.Context, userID uuid.UUID, now time.Time) (*service.YearlySummary, error)
}

type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, in service.CreateGoalInput) (*goal.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error)
	UpdateGoal(ctx context.Context, userID, id uuid.UUID, options ...goal.GoalOption) (*goal.Goal, error)
	DeleteGoal(ctx context.Context, userID, id uuid.UUID) error
}

type ProblemService interface {
	CreateProblem(ctx context.Context, userID uuid.UUID, in service.CreateProblemInput) (*problem.Problem, error)
	ListProblems(ctx context.Context, userID uuid.UUID) ([]*problem.Problem, error)
	UpdateProblem(ctx context.Context, userID, id uuid.UUID, options ...problem.ProblemOption) (*problem.Problem, error)
}
