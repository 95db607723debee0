package repository

import (
	"context"

	"github.com/google/uuid"

	"lifeTracker/internal/models/goal"
	"lifeTracker/internal/models/problem"
	"lifeTracker/internal/models/task"
)

// TaskRepository stores tasks per user. Reads are scoped to a user and
// exclude soft-deleted rows; ranking and aggregation happen above this
// layer, on the fetched slice.
type TaskRepository interface {
	Create(ctx context.Context, t *task.Task) error
	Update(ctx context.Context, t *task.Task) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*task.Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*task.Task, error)
	// ListAll pages over every live task regardless of user; the
	// reconcile worker uses it.
	ListAll(ctx context.Context, offset, limit int) ([]*task.Task, error)
	DeleteSoft(ctx context.Context, t *task.Task) error
	HealthCheck(ctx context.Context) error
}

type GoalRepository interface {
	Create(ctx context.Context, g *goal.Goal) error
	Update(ctx context.Context, g *goal.Goal) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*goal.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ProblemRepository interface {
	Create(ctx context.Context, p *problem.Problem) error
	Update(ctx context.Context, p *problem.Problem) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*problem.Problem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*problem.Problem, error)
}
