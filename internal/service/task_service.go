package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifeTracker/internal/logger"
	"lifeTracker/internal/models/task"
	"lifeTracker/internal/priority"
	rep "lifeTracker/internal/repository"
)

// DefaultRating is used when a create request omits a rating,
// the midpoint of the 1-10 scale.
const DefaultRating = 5

const todayFocusLimit = 3
const upcomingLimit = 10

type TaskService struct {
	repo   rep.TaskRepository
	policy priority.Policy
}

func NewTaskService(repo rep.TaskRepository, policy priority.Policy) TaskService {
	return TaskService{
		repo:   repo,
		policy: policy,
	}
}

type CreateTaskInput struct {
	Title        string
	Description  string
	LifeArea     task.LifeArea
	GoalID       *uuid.UUID
	Impact       int
	Urgency      int
	Effort       int
	DueDate      *time.Time
	ScheduledFor *time.Time
}

// derive is the single task-write seam: every path that changes
// impact/urgency/effort goes through here before persisting, so the
// stored priority_score/quadrant/is_high_impact can never drift from
// their inputs.
func (s *TaskService) derive(t *task.Task) error {
	score, err := priority.Score(t.Impact, t.Urgency, t.Effort)
	if err != nil {
		return toValidationError(err)
	}
	quadrant, err := s.policy.Classify(t.Impact, t.Urgency)
	if err != nil {
		return toValidationError(err)
	}
	highImpact, err := s.policy.IsHighImpact(t.Impact, t.Effort)
	if err != nil {
		return toValidationError(err)
	}

	t.PriorityScore = score
	t.Quadrant = quadrant
	t.IsHighImpact = highImpact
	return nil
}

func toValidationError(err error) error {
	var ratingErr *priority.RatingError
	if errors.As(err, &ratingErr) {
		return NewValidationError(ratingErr.Field, err.Error())
	}
	var filterErr *priority.FilterError
	if errors.As(err, &filterErr) {
		return NewValidationError(filterErr.Field, err.Error())
	}
	return err
}

// applyCompletion keeps the completed_at <-> status invariant: set
// exactly when the task becomes completed, cleared when it leaves.
func applyCompletion(t *task.Task, now time.Time) {
	if t.Status == task.StatusCompleted {
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, in CreateTaskInput) (*task.Task, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if !in.LifeArea.Valid() {
		return nil, NewValidationError("life_area", fmt.Sprintf("unknown life area %q", in.LifeArea))
	}

	t := &task.Task{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		LifeArea:     in.LifeArea,
		GoalID:       in.GoalID,
		Impact:       ratingOrDefault(in.Impact),
		Urgency:      ratingOrDefault(in.Urgency),
		Effort:       ratingOrDefault(in.Effort),
		DueDate:      in.DueDate,
		ScheduledFor: in.ScheduledFor,
		Status:       task.StatusTodo,
		CreatedAt:    time.Now(),
	}

	if err := s.derive(t); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

// Zero means "not supplied" in a create request; ratings themselves
// start at 1.
func ratingOrDefault(v int) int {
	if v == 0 {
		return DefaultRating
	}
	return v
}

func (s *TaskService) GetTaskByID(ctx context.Context, userID, id uuid.UUID) (*task.Task, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: task not found", zap.String("target_id", id.String()))
			return nil, NewNotFound("task", id.String())
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, id uuid.UUID, options ...task.TaskOption) (*task.Task, error) {
	t, err := s.GetTaskByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	for _, opt := range options {
		opt(t)
	}

	if !t.LifeArea.Valid() {
		return nil, NewValidationError("life_area", fmt.Sprintf("unknown life area %q", t.LifeArea))
	}
	if !t.Status.Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", t.Status))
	}

	if err := s.derive(t); err != nil {
		return nil, err
	}
	applyCompletion(t, time.Now())

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, rep.ErrVersionConflict) {
			return nil, NewVersionConflict("task", id.String())
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return t, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, userID, id uuid.UUID) (*task.Task, error) {
	return s.UpdateTask(ctx, userID, id, task.WithStatus(task.StatusCompleted))
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, id uuid.UUID) error {
	t, err := s.GetTaskByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteSoft(ctx, t); err != nil {
		if errors.Is(err, rep.ErrVersionConflict) {
			return NewVersionConflict("task", id.String())
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// ListTasks fetches the user's tasks and hands them to the ranking core.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, filter priority.Filter) ([]*task.Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	ranked, err := priority.Rank(tasks, filter)
	if err != nil {
		return nil, toValidationError(err)
	}
	return ranked, nil
}

// TodayFocus returns the top open tasks by priority score.
func (s *TaskService) TodayFocus(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	open, err := s.openTasksByPriority(ctx, userID)
	if err != nil {
		return nil, err
	}
	return head(open, todayFocusLimit), nil
}

// UpcomingTasks returns a longer slice of the same ranking that feeds
// TodayFocus.
func (s *TaskService) UpcomingTasks(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	open, err := s.openTasksByPriority(ctx, userID)
	if err != nil {
		return nil, err
	}

	return head(open, upcomingLimit), nil
}

func (s *TaskService) openTasksByPriority(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	open := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == task.StatusTodo || t.Status == task.StatusInProgress {
			open = append(open, t)
		}
	}

	ranked, err := priority.Rank(open, priority.Filter{SortBy: priority.SortByPriority})
	if err != nil {
		return nil, toValidationError(err)
	}
	return ranked, nil
}

func head(tasks []*task.Task, n int) []*task.Task {
	if len(tasks) > n {
		return tasks[:n]
	}
	return tasks
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}
